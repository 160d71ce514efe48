package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatInt formata inteiros com separador de milhar: 1,450,000
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatCurrency formata valores monetários em dólar: $212,500.00
func FormatCurrency(f float64) string {
	if f < 0 {
		return printer.Sprintf("-$%.2f", -f)
	}
	return printer.Sprintf("$%.2f", f)
}

// FormatPercent formata um valor já em porcentagem: 98.5%
func FormatPercent(f float64) string {
	return printer.Sprintf("%.1f%%", f)
}

// FormatPrecisePercent mantém duas casas, usado em taxas pequenas como CTR
func FormatPrecisePercent(f float64) string {
	return printer.Sprintf("%.2f%%", f)
}

// FormatRatio formata multiplicadores como ROAS: 4.00x
func FormatRatio(f float64) string {
	return printer.Sprintf("%.2fx", f)
}

// FormatCompact abrevia números grandes: 12.5M, 840K. O arredondamento é
// feito antes da escolha da unidade (999,999 vira 1.0M, nunca 1,000K).
func FormatCompact(n int64) string {
	sign := ""
	abs := float64(n)
	if n < 0 {
		sign = "-"
		abs = -abs
	}

	if abs < 1_000 {
		return printer.Sprintf("%d", n)
	}

	if thousands := math.Round(abs / 1_000); thousands < 1_000 {
		return printer.Sprintf("%s%.0fK", sign, thousands)
	}

	if millions := math.Round(abs/100_000) / 10; millions < 1_000 {
		return printer.Sprintf("%s%.1fM", sign, millions)
	}

	return printer.Sprintf("%s%.1fB", sign, math.Round(abs/100_000_000)/10)
}
