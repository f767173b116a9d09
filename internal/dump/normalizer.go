package dump

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"intelliwheels/internal/models"
)

const (
	targetCurrency = "JOD"
	overviewMax    = 500
)

var (
	// aedPriceRegexp captures grouped integers after the AED marker, e.g.
	// "AED 10,000 - AED 12,000".
	aedPriceRegexp = regexp.MustCompile(`AED\s*([\d,]+)`)
	// starRegexp captures the encoded star value from markers like "star4"
	// or "star45.jpg".
	starRegexp = regexp.MustCompile(`star(\d+)`)
)

// Normalizer maps raw vendor tuples to canonical catalog records. The
// conversion rate and fallback rating come from configuration; their defaults
// are the vendor's historical constants.
type Normalizer struct {
	AEDToJOD      float64
	DefaultRating float64
}

// Normalize converts one tuple into a Car. It returns false when the tuple
// has no make or model, which rejects the record entirely.
func (n Normalizer) Normalize(t Tuple) (models.Car, bool) {
	carMake := t[fieldMake]
	carModel := t[fieldModel]
	if carMake == "" || carModel == "" {
		return models.Car{}, false
	}

	// Year is regex-constrained to four digits, so Atoi cannot fail.
	year, _ := strconv.Atoi(t[fieldYear])

	car := models.Car{
		Make:     carMake,
		Model:    carModel,
		Year:     year,
		Currency: targetCurrency,
		Price:    n.convertPrice(t[fieldPriceUAE]),
		Rating:   n.deriveRating(t[fieldReliability], t[fieldResale]),
	}

	gallery := make([]string, 0, 2)
	for _, img := range []string{t[fieldImage1], t[fieldImage2]} {
		if strings.HasPrefix(img, "http") {
			gallery = append(gallery, img)
		}
	}
	if len(gallery) > 0 {
		first := gallery[0]
		car.ImageURL = &first
		if raw, err := json.Marshal(gallery); err == nil {
			car.GalleryImages = datatypes.JSON(raw)
		}
	}

	overview := truncate(t[fieldOverview], overviewMax)
	if overview != "" {
		car.Description = &overview
	}
	specsOverview := overview
	if specsOverview == "" {
		specsOverview = fmt.Sprintf("%s %s %d", carMake, carModel, year)
	}
	specs := map[string]string{
		"overview":  specsOverview,
		"origin":    t[fieldOrigin],
		"class":     t[fieldClass],
		"bodyStyle": t[fieldBody],
		"weight":    t[fieldWeight],
		"pros":      t[fieldPros],
		"cons":      t[fieldCons],
	}
	if raw, err := json.Marshal(specs); err == nil {
		car.Specs = datatypes.JSON(raw)
	}

	return car, true
}

// convertPrice averages every AED amount found in the origin-region price
// string and converts to JOD at the configured rate, rounded to two decimal
// places. Zero amounts are placeholders in the feed and count as absent;
// strings without a usable AED amount yield a nil price.
func (n Normalizer) convertPrice(priceStr string) *decimal.Decimal {
	matches := aedPriceRegexp.FindAllStringSubmatch(priceStr, -1)
	if len(matches) == 0 {
		return nil
	}
	sum := int64(0)
	count := int64(0)
	for _, m := range matches {
		v, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
		if err != nil || v == 0 {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return nil
	}
	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(count))
	price := avg.Mul(decimal.NewFromFloat(n.AEDToJOD)).Round(2)
	return &price
}

// deriveRating averages the reliability and resale star markers. An encoded
// value of 10 or more is a fixed-point tenth ("star45" is 4.5 stars). Records
// with neither marker fall back to the configured default.
func (n Normalizer) deriveRating(reliability, resale string) float64 {
	sum := 0.0
	count := 0
	for _, marker := range []string{reliability, resale} {
		if v, ok := extractStars(marker); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return n.DefaultRating
	}
	return math.Round(sum/float64(count)*10) / 10
}

func extractStars(marker string) (float64, bool) {
	m := starRegexp.FindStringSubmatch(marker)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil || v == 0 {
		// "star0" is a placeholder, not a zero rating.
		return 0, false
	}
	if v >= 10 {
		return float64(v) / 10, true
	}
	return float64(v), true
}

// truncate limits s to max characters, not bytes, so multi-byte text keeps
// its full length and is never cut mid-rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
