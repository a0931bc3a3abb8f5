package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/devalimotahari/uni-schedule-form/internal/domain"
)

// Messages shown on the form, one per failing rule.
const (
	MsgRequired        = "لطفا این فیلد را وارد نمایید."
	MsgName            = "لطفا نام را وارد کنید."
	MsgPreferDays      = "حداقل یک روز به عنوان روز ترجیحی انتخاب کنید."
	MsgCourses         = "حداقل یک درس انتخاب کنید."
	MsgDays            = "حداقل یک روز وارد نمایید"
	MsgTimeFormat      = "فرمت ساعت صحیح نمی‌باشد."
	MsgContact         = "لطفا کدملی یا موبایل را وارد نمایید (وارد کردن حداقل یکی از آنها اجباریست)"
	MsgNationalCode    = "لطفا کدملی را به درستی وارد نمایید"
	MsgMobile          = "لطفا شماره موبایل را به درستی وارد نمایید."
	MsgPreferDaysScope = "روزهای ترجیحی باید از بین روزهای برنامه انتخاب شوند."
	MsgDayRange        = "روز انتخاب شده معتبر نمی‌باشد."
)

var hhmmPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Professor validates professor submissions. It is pure: Validate never
// touches storage and reports every failing rule, one message per rule,
// keyed by the JSON field path.
type Professor struct {
	validate *validator.Validate
}

func NewProfessor() *Professor {
	v := validator.New()

	// Error keys use the json names so they map straight onto form fields.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})

	v.RegisterStructValidation(professorSubmissionRules, domain.ProfessorSubmission{})

	return &Professor{validate: v}
}

// professorSubmissionRules carries the cross-field rules tags cannot express.
func professorSubmissionRules(sl validator.StructLevel) {
	sub := sl.Current().Interface().(domain.ProfessorSubmission)

	if sub.NationalCode == "" && sub.Mobile == "" {
		sl.ReportError(sub.Mobile, "mobile", "Mobile", "contact", "")
	}

	scheduled := make(map[domain.DayCode]bool, len(sub.Days))
	for _, entry := range sub.Days {
		scheduled[entry.Day] = true
	}
	for _, day := range sub.PreferDays {
		if !scheduled[day] {
			sl.ReportError(sub.PreferDays, "preferDays", "PreferDays", "dayscope", "")
			break
		}
	}
}

// Validate returns nil when the submission passes, otherwise a map from
// field path (e.g. "mobile", "days[0].startTime") to its failure messages.
func (p *Professor) Validate(sub *domain.ProfessorSubmission) map[string][]string {
	err := p.validate.Struct(sub)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"form": {MsgRequired}}
	}

	out := make(map[string][]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := strings.TrimPrefix(fe.Namespace(), "ProfessorSubmission.")
		out[path] = append(out[path], messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "contact":
		return MsgContact
	case "dayscope":
		return MsgPreferDaysScope
	case "hhmm":
		return MsgTimeFormat
	case "len":
		if fe.Field() == "nationalCode" {
			return MsgNationalCode
		}
		return MsgMobile
	case "min", "max":
		switch fe.Field() {
		case "preferDays":
			return MsgPreferDays
		case "courses":
			return MsgCourses
		case "days":
			return MsgDays
		case "day":
			return MsgDayRange
		}
	case "required":
		if fe.Field() == "name" {
			return MsgName
		}
	}
	return MsgRequired
}
