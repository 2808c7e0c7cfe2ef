package currency

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Creditos-api/internal/domain"
	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	nbsp       = "\u00a0"
	narrowNbsp = "\u202f"
)

// localeRules convención numérica de un locale para el estilo "accounting".
type localeRules struct {
	group      string
	decimal    string
	indian     bool              // agrupación 3 + 2 (##,##,##0)
	symbolLast bool              // "1.000,00 €"
	space      string            // separador entre símbolo y número
	parens     bool              // negativos entre paréntesis
	symbols    map[string]string // símbolo angosto propio del locale, si difiere de la tabla
}

var (
	enRules = localeRules{group: ",", decimal: ".", parens: true}

	rulesByLocale = map[string]localeRules{
		"en-US": enRules,
		"en-GB": enRules,
		"en-CA": enRules,
		"en-AU": enRules,
		"en-NG": enRules,
		"en-KE": enRules,
		"en-GH": enRules,
		"ja-JP": {group: ",", decimal: ".", parens: true, symbols: map[string]string{"JPY": "\uffe5"}},
		"zh-CN": enRules,
		"en-ZA": {group: nbsp, decimal: ",", parens: true},
		"de-DE": {group: ".", decimal: ",", symbolLast: true, space: nbsp},
		"fr-CH": {group: narrowNbsp, decimal: ",", symbolLast: true, space: nbsp},
		"pt-BR": {group: ".", decimal: ",", space: nbsp},
		"hi-IN": {group: ",", decimal: ".", indian: true},
	}
)

// Format formatea amount en la moneda code con las convenciones de locale:
// símbolo angosto, separadores del locale y signo contable para negativos.
// Los decimales salen de la tabla ISO 4217 (JPY = 0, USD = 2).
func Format(amount decimal.Decimal, code, locale string) (string, error) {
	unit, err := xcurrency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", fmt.Errorf("%w: moneda %q", domain.ErrInvalidInput, code)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: locale %q", domain.ErrInvalidInput, locale)
	}
	rules := rulesFor(tag)

	scale, _ := xcurrency.Standard.Rounding(unit)
	rounded := amount.Round(int32(scale))
	negative := rounded.IsNegative()

	digits := rounded.Abs().StringFixed(int32(scale))
	intPart, fracPart, _ := strings.Cut(digits, ".")
	num := groupDigits(intPart, rules)
	if fracPart != "" {
		num += rules.decimal + fracPart
	}

	symbol, space := symbolFor(unit.String(), rules), rules.space
	if space == "" && isAlpha(symbol) && !rules.symbolLast {
		space = nbsp
	}
	var body string
	if rules.symbolLast {
		body = num + space + symbol
	} else {
		body = symbol + space + num
	}

	if negative {
		if rules.parens {
			return "(" + body + ")", nil
		}
		return "-" + body, nil
	}
	return body, nil
}

func rulesFor(tag language.Tag) localeRules {
	if r, ok := rulesByLocale[tag.String()]; ok {
		return r
	}
	// Sin región exacta: usar la del idioma base si hay una sola candidata conocida.
	base, _ := tag.Base()
	for loc, r := range rulesByLocale {
		if strings.HasPrefix(loc, base.String()+"-") && base.String() != "en" {
			return r
		}
	}
	return enRules
}

func symbolFor(code string, rules localeRules) string {
	if s, ok := rules.symbols[code]; ok {
		return s
	}
	if c, ok := Lookup(code); ok {
		return c.NarrowSymbol
	}
	return code
}

func groupDigits(s string, rules localeRules) string {
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	size := 3
	if rules.indian {
		size = 2
	}
	var parts []string
	for len(head) > size {
		parts = append([]string{head[len(head)-size:]}, parts...)
		head = head[:len(head)-size]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(append(parts, tail), rules.group)
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return s != ""
}
