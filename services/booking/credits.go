package booking

import (
	"regexp"
	"strconv"
	"strings"

	"courtcredits/models"

	"github.com/shopspring/decimal"
)

// maxCreditsPerLine bounds the units a single line may expand into.
const maxCreditsPerLine = 100

var (
	lineBreak  = regexp.MustCompile(`<[^>]*>|\r?\n`)
	creditLine = regexp.MustCompile(`^(\d+)x \$(\d+(?:\.\d+)?)$`)
)

// ParseCreditLines expands "{count}x ${rate}" lines into one credit per unit.
// Lines may be separated by newlines or HTML tags such as <br>. Lines that do
// not match are returned in skipped.
func ParseCreditLines(text string) (credits []models.CreditUnit, skipped []string) {
	for _, line := range lineBreak.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := creditLine.FindStringSubmatch(line)
		if m == nil {
			skipped = append(skipped, line)
			continue
		}
		count, err := strconv.Atoi(m[1])
		if err != nil || count < 1 || count > maxCreditsPerLine {
			skipped = append(skipped, line)
			continue
		}
		amount, err := decimal.NewFromString(m[2])
		if err != nil {
			skipped = append(skipped, line)
			continue
		}
		for i := 0; i < count; i++ {
			credits = append(credits, models.CreditUnit{Amount: amount})
		}
	}
	return credits, skipped
}
