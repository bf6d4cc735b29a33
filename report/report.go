// Package report renders scenario comparisons as a fixed-width text report.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"rental-sim/domain"
)

const fileTimeLayout = "20060102_150405"

// FileName returns the report file name for the given instant.
func FileName(now time.Time) string {
	return fmt.Sprintf("simulation_report_%s.txt", now.Format(fileTimeLayout))
}

// Render writes one block per scenario: the inputs, then one row per regime.
func Render(w io.Writer, scenarios []domain.Scenario) error {
	bw := bufio.NewWriter(w)

	header := fmt.Sprintf("%-8s | %-15s | %13s | %14s | %17s",
		"Scenario", "Statut", "Net annuel (€)", "Net mensuel (€)", "Effort mensuel (€)")
	fmt.Fprintln(bw, header)
	fmt.Fprintln(bw, strings.Repeat("-", utf8.RuneCountInString(header)))

	for _, sc := range scenarios {
		fmt.Fprintf(bw, "%s – paramètres saisis\n", sc.Name)
		params := sc.Parameters
		for _, f := range domain.Fields {
			v := f.Get(&params)
			text := formatAmount(v)
			if f.Rate {
				text = formatRate(v)
			}
			fmt.Fprintf(bw, "   %-35s: %s\n", f.Label, text)
		}
		fmt.Fprintln(bw)

		for i, regime := range domain.Regimes() {
			r, ok := sc.Results[regime]
			if !ok {
				return fmt.Errorf("scenario %s: missing result for %s", sc.Name, regime)
			}
			name := ""
			if i == 0 {
				name = sc.Name
			}
			fmt.Fprintf(bw, "%-8s | %-15s | %13s | %14s | %17s\n",
				name,
				regime,
				formatAmount(r.NetCashFlow),
				formatAmount(r.MonthlyCashFlow()),
				formatAmount(r.MonthlyEffort()),
			)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// WriteFile renders the report into dir under a timestamped name and returns its path.
func WriteFile(dir string, now time.Time, scenarios []domain.Scenario) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	path := filepath.Join(dir, FileName(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}

	if err := Render(f, scenarios); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("writing report: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("closing report file: %w", err)
	}
	return path, nil
}
