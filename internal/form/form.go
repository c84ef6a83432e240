// Package form validates submitted HTML forms before they reach the database.
//
// Every form keeps the raw submitted strings so a page can be re-rendered with
// the user's input after a failed validation.
package form

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the format of every date field, as sent by <input type="date">.
	DateLayout = "2006-01-02"

	moneyDigits   = 10
	moneyDecimals = 2
)

var (
	validate *validator.Validate

	slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("integer", isInteger)
	_ = validate.RegisterValidation("money", isMoney)
	_ = validate.RegisterValidation("slug", isSlug)
}

// Errors maps a form field name to its validation messages.
type Errors map[string][]string

// Add appends a message for the field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Get returns the messages of the field.
func (e Errors) Get(field string) []string {
	return e[field]
}

// Has reports whether the field has at least one message.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Valid reports whether there are no messages at all.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Error renders all messages as "field: msg; field: msg" sorted by field.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}

	return strings.Join(parts, "; ")
}

// check runs the struct validation and converts the result into Errors.
func check(v any) Errors {
	errs := Errors{}
	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		errs.Add("__all__", err.Error())
		return errs
	}

	for _, fe := range vErrs {
		errs.Add(fe.Field(), message(fe))
	}

	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "integer":
		return integerMessage(fe.Value())
	case "money":
		return fmt.Sprintf("Enter a number with at most %d digits and %d decimal places.", moneyDigits, moneyDecimals)
	case "datetime":
		return "Enter a valid date."
	case "slug":
		return "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}

// isInteger accepts whole numbers that fit an INTEGER column.
func isInteger(fl validator.FieldLevel) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(fl.Field().String()), 10, 32)
	return err == nil
}

func integerMessage(value any) string {
	s, _ := value.(string)
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if !errors.Is(err, strconv.ErrRange) {
		return "Enter a whole number."
	}

	if strings.HasPrefix(strings.TrimSpace(s), "-") {
		return fmt.Sprintf("Ensure this value is greater than or equal to %d.", math.MinInt32)
	}
	return fmt.Sprintf("Ensure this value is less than or equal to %d.", math.MaxInt32)
}

func isMoney(fl validator.FieldLevel) bool {
	return validMoney(fl.Field().String())
}

func isSlug(fl validator.FieldLevel) bool {
	return slugRe.MatchString(fl.Field().String())
}

// validMoney accepts numbers that fit numeric(10,2).
func validMoney(s string) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return false
	}

	decimals := 0
	exp := int(d.Exponent())
	if exp < 0 {
		decimals = -exp
	}
	if decimals > moneyDecimals {
		return false
	}

	digits := len(d.Coefficient().String())
	if d.Sign() < 0 {
		digits--
	}
	if exp > 0 {
		digits += exp
	}

	return digits-decimals <= moneyDigits-moneyDecimals
}

// parseMoney converts an already validated money string. Empty means zero.
func parseMoney(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return d.Round(moneyDecimals)
}

func parseInt(s string) int {
	i, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	return int(i)
}
