package tools

import (
	"reflect"
	"regexp"
	"strconv"
	"time"

	"github.com/modern-go/reflect2"
)

// DoTagFunc 遍历struct的字段，依次执行fn
func DoTagFunc(v interface{}, data interface{}, fns []func(reflect.StructField, reflect.Value, interface{}) error) error {
	if reflect2.IsNil(v) {
		return nil
	}

	vType := reflect2.TypeOf(v).Type1()
	switch vType.Kind() {
	case reflect.Interface, reflect.Ptr:
	default:
		// 只有interface和point能生效
		return nil
	}

	indirect := reflect.Indirect(reflect.ValueOf(v))
	for i := 0; i < indirect.NumField(); i++ {
		field := indirect.Field(i)
		fieldStruct := vType.Elem().Field(i)

		for _, fn := range fns {
			if err := fn(fieldStruct, field, data); err != nil {
				return err
			}
		}
	}

	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

func SetDefaultValueIfNil(structField reflect.StructField, vValue reflect.Value, data interface{}) error {
	structTag := structField.Tag
	if containTag(structTag, "default") || vValue.Kind() == reflect.Struct {
		switch vValue.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
			if vValue.Int() == 0 {
				if structField.Type == durationType {
					d, err := time.ParseDuration(structTag.Get("default"))
					if err != nil {
						return err
					}
					vValue.SetInt(int64(d))
				} else {
					v, _ := strconv.Atoi(structTag.Get("default"))
					vValue.SetInt(int64(v))
				}
			}
		case reflect.String:
			if vValue.String() == "" {
				vValue.SetString(structTag.Get("default"))
			}
		case reflect.Float32:
			if vValue.Float() == 0 {
				v, _ := strconv.ParseFloat(structTag.Get("default"), 32)
				vValue.SetFloat(v)
			}
		case reflect.Float64:
			if vValue.Float() == 0 {
				v, _ := strconv.ParseFloat(structTag.Get("default"), 64)
				vValue.SetFloat(v)
			}
		case reflect.Struct:
			t := structField.Type
			for i := 0; i < t.NumField(); i++ {
				fieldStruct := t.Field(i)
				if err := SetDefaultValueIfNil(fieldStruct, vValue.Field(i), data); err != nil {
					return err
				}
			}
		default:

		}
	}
	return nil
}

func containTag(tag reflect.StructTag, tagName string) bool {
	return regexp.MustCompile(`\b` + tagName + `\b`).Match([]byte(tag))
}
