package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// Protocol addresses are opaque 0x-prefixed identifiers.
	addrRe = regexp.MustCompile(`^0x[A-Za-z0-9]{1,80}$`)
	// Digests are 0x-prefixed hex as produced by the keccak digest service.
	digestRe = regexp.MustCompile(`^0x[0-9a-fA-F]{8,64}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("addr", validateAddr)
		_ = v.RegisterValidation("digest", validateDigest)
	}
}

func validateAddr(fl validator.FieldLevel) bool {
	return addrRe.MatchString(fl.Field().String())
}

func validateDigest(fl validator.FieldLevel) bool {
	return digestRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims whitespace on every exported string field (including
// *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Slice:
			if f.Type().Elem().Kind() == reflect.String {
				for j := 0; j < f.Len(); j++ {
					el := f.Index(j)
					el.SetString(strings.TrimSpace(el.String()))
				}
			}
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			if elem := f.Elem(); elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		}
	}
}
