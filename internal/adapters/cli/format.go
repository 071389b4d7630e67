// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/example/farmhand/internal/core/metrics"
)

const rule = "────────────────────────────────────────────────────────────────"

var (
	green   = color.New(color.FgGreen)
	yellow  = color.New(color.FgYellow)
	red     = color.New(color.FgRed)
	magenta = color.New(color.FgHiMagenta)
)

// money renders an amount as dollars, sign first: -$12.50.
func money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// signedMoney colours income green and expenses red.
func signedMoney(d decimal.Decimal) string {
	switch {
	case d.IsPositive():
		return green.Sprint("+" + money(d))
	case d.IsNegative():
		return red.Sprint(money(d))
	}
	return money(d)
}

const levelWidth = 10

// levelText pads level to width before colouring it, so escape codes do
// not count toward the column.
func levelText(level metrics.StockLevel, width int) string {
	text := fmt.Sprintf("%-*s", width, level)
	switch level {
	case metrics.StockCritical:
		return red.Sprint(text)
	case metrics.StockLow:
		return yellow.Sprint(text)
	case metrics.StockGood:
		return green.Sprint(text)
	}
	return text
}

func statusText(status metrics.StockStatus) string {
	switch status {
	case metrics.StatusOutOfStock:
		return red.Sprint(string(status))
	case metrics.StatusReorderNeeded:
		return yellow.Sprint(string(status))
	}
	return string(status)
}

func check(done bool) string {
	if done {
		return green.Sprint("✓")
	}
	return " "
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
