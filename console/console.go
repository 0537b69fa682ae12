/*
Package console provides the interactive payroll menu loop.

PURPOSE:
  A terminal front end over the same engine the HTTP API wraps: add
  employees to the roster, process payroll, and browse records and
  totals. Reads from an injected io.Reader and writes to an injected
  io.Writer, so the whole loop is scriptable in tests.

MENU:
  1. Add Fulltime Employee
  2. Add Contract Employee
  3. Process Payroll
  4. Show All Payrolls
  5. Show Employee Payroll
  6. Show Total Summary
  7. Exit

INPUT DISCIPLINE:
  Numeric prompts re-prompt until a valid non-negative number is
  entered; the allowance period prompt re-prompts until one of
  monthly/yearly/per_project. The engine never sees unvalidated input.

SEE ALSO:
  - cmd/console/main.go: Wires stdin/stdout
  - payroll: The engine underneath
*/
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/employee"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// CONSOLE
// =============================================================================

// Console drives the interactive menu loop.
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	roster    *payroll.Roster
	ledger    payroll.Ledger
	processor *payroll.Processor
}

// New creates a console over the given reader, writer, roster, and
// ledger.
func New(in io.Reader, out io.Writer, roster *payroll.Roster, ledger payroll.Ledger) *Console {
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		roster:    roster,
		ledger:    ledger,
		processor: payroll.NewProcessor(ledger),
	}
}

// Run executes the menu loop until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintf(c.out, "=== Employee Management System ===\n\n")

	for {
		c.showMenu()
		choice, ok := c.readLine("Enter your choice: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.addEmployee(employee.KindSalaried)
		case "2":
			c.addEmployee(employee.KindHourly)
		case "3":
			c.processPayroll(ctx)
		case "4":
			c.showAllPayrolls(ctx)
		case "5":
			c.showEmployeePayroll(ctx)
		case "6":
			c.showTotalSummary(ctx)
		case "7":
			fmt.Fprintln(c.out, "Thank you for using Employee Management System!")
			return nil
		default:
			fmt.Fprintf(c.out, "Invalid choice. Please try again.\n\n")
		}
	}
}

func (c *Console) showMenu() {
	fmt.Fprintln(c.out, "=== MAIN MENU ===")
	fmt.Fprintln(c.out, "1. Add Fulltime Employee")
	fmt.Fprintln(c.out, "2. Add Contract Employee")
	fmt.Fprintln(c.out, "3. Process Payroll")
	fmt.Fprintln(c.out, "4. Show All Payrolls")
	fmt.Fprintln(c.out, "5. Show Employee Payroll")
	fmt.Fprintln(c.out, "6. Show Total Summary")
	fmt.Fprintln(c.out, "7. Exit")
	fmt.Fprintln(c.out)
}

// =============================================================================
// MENU ACTIONS
// =============================================================================

func (c *Console) addEmployee(kind payroll.Kind) {
	if kind == employee.KindSalaried {
		fmt.Fprintf(c.out, "\n=== Add Fulltime Employee ===\n")
	} else {
		fmt.Fprintf(c.out, "\n=== Add Contract Employee ===\n")
	}

	id, ok := c.readLine("Employee ID: ")
	if !ok {
		return
	}

	workHours, ok := c.readNumber("Work Hours: ", "work hours")
	if !ok {
		return
	}
	allowance, ok := c.readNumber("Allowance (Tunjangan): ", "allowance")
	if !ok {
		return
	}
	period, ok := c.readPeriod()
	if !ok {
		return
	}

	cfg := payroll.EmployeeConfig{
		ID:              payroll.EmployeeID(strings.TrimSpace(id)),
		WorkHours:       workHours,
		AllowanceAmount: payroll.IDRFromDecimal(allowance),
		AllowancePeriod: period,
	}

	if kind == employee.KindSalaried {
		baseSalary, ok := c.readNumber("Base Salary: ", "base salary")
		if !ok {
			return
		}
		cfg.BaseSalary = payroll.IDRFromDecimal(baseSalary)
	} else {
		hourlyRate, ok := c.readNumber("Hourly Rate: ", "hourly rate")
		if !ok {
			return
		}
		cfg.HourlyRate = payroll.IDRFromDecimal(hourlyRate)
	}

	emp, err := payroll.BuildEmployee(kind, cfg)
	if err != nil {
		fmt.Fprintf(c.out, "Could not add employee: %v\n\n", err)
		return
	}
	if err := c.roster.Add(emp); err != nil {
		fmt.Fprintf(c.out, "Could not add employee: %v\n\n", err)
		return
	}

	if kind == employee.KindSalaried {
		fmt.Fprintf(c.out, "Fulltime employee added successfully!\n\n")
	} else {
		fmt.Fprintf(c.out, "Contract employee added successfully!\n\n")
	}
}

func (c *Console) processPayroll(ctx context.Context) {
	fmt.Fprintf(c.out, "\n=== Process Payroll ===\n")

	id, ok := c.readLine("Employee ID: ")
	if !ok {
		return
	}

	emp, err := c.roster.Find(payroll.EmployeeID(strings.TrimSpace(id)))
	if err != nil {
		fmt.Fprintf(c.out, "Employee not found: %s\n\n", strings.TrimSpace(id))
		return
	}

	period, ok := c.readLine("Pay Period (e.g., 'September 2024'): ")
	if !ok {
		return
	}

	rec, err := c.processor.Process(ctx, emp, payroll.PayPeriod(strings.TrimSpace(period)))
	if err != nil {
		fmt.Fprintf(c.out, "Could not process payroll: %v\n\n", err)
		return
	}

	fmt.Fprintf(c.out, "\nPayroll processed successfully!\n")
	c.printRecord(rec)
	fmt.Fprintln(c.out)
}

func (c *Console) showAllPayrolls(ctx context.Context) {
	fmt.Fprintf(c.out, "\n=== All Payroll Records ===\n")

	recs, err := c.ledger.Records(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Could not read records: %v\n\n", err)
		return
	}
	if len(recs) == 0 {
		fmt.Fprintf(c.out, "No payroll records found.\n\n")
		return
	}

	for _, rec := range recs {
		c.printRecord(rec)
	}
	fmt.Fprintln(c.out)
	c.printSummary(payroll.Summarize(recs))
	fmt.Fprintln(c.out)
}

func (c *Console) showEmployeePayroll(ctx context.Context) {
	fmt.Fprintf(c.out, "\n=== Employee Payroll History ===\n")

	id, ok := c.readLine("Enter Employee ID: ")
	if !ok {
		return
	}
	id = strings.TrimSpace(id)

	recs, err := c.ledger.RecordsForEmployee(ctx, payroll.EmployeeID(id))
	if err != nil {
		fmt.Fprintf(c.out, "Could not read records: %v\n\n", err)
		return
	}
	if len(recs) == 0 {
		// A normal outcome, not an error.
		fmt.Fprintf(c.out, "No payroll records found for employee ID: %s\n\n", id)
		return
	}

	fmt.Fprintf(c.out, "Payroll records for employee %s:\n\n", id)
	for _, rec := range recs {
		c.printRecord(rec)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) showTotalSummary(ctx context.Context) {
	fmt.Fprintln(c.out)

	summary, err := c.ledger.Summary(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Could not read summary: %v\n\n", err)
		return
	}
	c.printSummary(summary)
	fmt.Fprintln(c.out)
}

// =============================================================================
// PRESENTATION
// =============================================================================

func (c *Console) printRecord(rec payroll.PayrollRecord) {
	fmt.Fprintln(c.out, "=== Payroll Summary ===")
	fmt.Fprintf(c.out, "Employee ID: %s\n", rec.EmployeeID)
	fmt.Fprintf(c.out, "Employee Type: %s\n", rec.Kind)
	fmt.Fprintf(c.out, "Pay Period: %s\n", rec.PayPeriod)
	fmt.Fprintf(c.out, "Processed Date: %s\n", rec.ProcessedAt.Format("2006-01-02 15:04:05"))
	if emp, err := c.roster.Find(rec.EmployeeID); err == nil {
		fmt.Fprintf(c.out, "Work Hours: %s\n", emp.WorkHours().String())
	}
	fmt.Fprintf(c.out, "Gross Salary: %s\n", rec.Gross.Display())
	fmt.Fprintf(c.out, "Deductions: %s\n", rec.Deductions.Display())
	fmt.Fprintf(c.out, "Net Salary: %s\n", rec.Net.Display())
	fmt.Fprintln(c.out, strings.Repeat("-", 40))
}

func (c *Console) printSummary(s payroll.Summary) {
	fmt.Fprintln(c.out, "=== TOTAL SUMMARY ===")
	fmt.Fprintf(c.out, "Total Records: %d\n", s.Count)
	fmt.Fprintf(c.out, "Total Gross Payroll: %s\n", s.TotalGross.Display())
	fmt.Fprintf(c.out, "Total Net Payroll: %s\n", s.TotalNet.Display())
	fmt.Fprintf(c.out, "Total Deductions: %s\n", s.TotalDeductions.Display())
}

// =============================================================================
// INPUT HELPERS
// =============================================================================

// readLine prompts and reads one line. The second return is false when
// input is exhausted.
func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// readNumber re-prompts until a valid non-negative number is entered.
func (c *Console) readNumber(prompt, field string) (decimal.Decimal, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return decimal.Zero, false
		}
		n, err := decimal.NewFromString(strings.TrimSpace(line))
		if err == nil && !n.IsNegative() {
			return n, true
		}
		fmt.Fprintf(c.out, "Please enter a valid positive number for %s.\n", field)
	}
}

// readPeriod re-prompts until a recognized allowance period is entered.
func (c *Console) readPeriod() (payroll.AllowancePeriod, bool) {
	for {
		line, ok := c.readLine("Allowance Period (monthly/yearly/per_project): ")
		if !ok {
			return "", false
		}
		period, err := payroll.ParseAllowancePeriod(line)
		if err == nil {
			return period, true
		}
		fmt.Fprintln(c.out, "Please enter 'monthly', 'yearly', or 'per_project'.")
	}
}
