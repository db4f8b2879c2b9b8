package exporting

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	keySeparator = "_"
	isoLayout    = "2006-01-02T15:04:05.000Z"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
	floatType   = reflect.TypeOf(domain.Float(0))
)

// ReportRow é uma linha Metric,Value do CSV
type ReportRow struct {
	Metric string
	Value  string
}

// Flatten percorre o relatório em profundidade e gera uma linha por valor folha.
// Structs seguem a ordem dos campos (nome da tag json) e mapas seguem as chaves ordenadas.
// Listas viram JSON, datas viram ISO-8601 em UTC e ponteiros nulos viram "".
func Flatten(v any) []ReportRow {
	rows := []ReportRow{}
	flattenValue("", reflect.ValueOf(v), &rows)
	return rows
}

func flattenValue(prefix string, v reflect.Value, rows *[]ReportRow) {
	if !v.IsValid() {
		*rows = append(*rows, ReportRow{Metric: prefix, Value: ""})
		return
	}

	switch v.Type() {
	case timeType:
		*rows = append(*rows, ReportRow{Metric: prefix, Value: v.Interface().(time.Time).UTC().Format(isoLayout)})
		return
	case decimalType:
		*rows = append(*rows, ReportRow{Metric: prefix, Value: v.Interface().(decimal.Decimal).String()})
		return
	case floatType:
		*rows = append(*rows, ReportRow{Metric: prefix, Value: v.Interface().(domain.Float).String()})
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			*rows = append(*rows, ReportRow{Metric: prefix, Value: ""})
			return
		}
		flattenValue(prefix, v.Elem(), rows)
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := fieldName(field)
			if name == "" {
				continue
			}
			flattenValue(joinKey(prefix, name), v.Field(i), rows)
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			*rows = append(*rows, ReportRow{Metric: prefix, Value: marshal(v)})
			return
		}
		keys := make([]string, 0, v.Len())
		for _, key := range v.MapKeys() {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		for _, key := range keys {
			flattenValue(joinKey(prefix, key), v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key())), rows)
		}
	case reflect.Slice, reflect.Array:
		*rows = append(*rows, ReportRow{Metric: prefix, Value: marshal(v)})
	case reflect.Float32, reflect.Float64:
		*rows = append(*rows, ReportRow{Metric: prefix, Value: domain.Float(v.Float()).String()})
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		*rows = append(*rows, ReportRow{Metric: prefix, Value: strconv.FormatInt(v.Int(), 10)})
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		*rows = append(*rows, ReportRow{Metric: prefix, Value: strconv.FormatUint(v.Uint(), 10)})
	case reflect.Bool:
		*rows = append(*rows, ReportRow{Metric: prefix, Value: strconv.FormatBool(v.Bool())})
	case reflect.String:
		*rows = append(*rows, ReportRow{Metric: prefix, Value: v.String()})
	default:
		*rows = append(*rows, ReportRow{Metric: prefix, Value: fmt.Sprint(v.Interface())})
	}
}

// fieldName usa o nome da tag json; "-" descarta o campo
func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return field.Name
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + keySeparator + key
}

func marshal(v reflect.Value) string {
	if v.Kind() == reflect.Slice && v.IsNil() {
		return "[]"
	}
	data, err := json.Marshal(v.Interface())
	if err != nil {
		return ""
	}
	return string(data)
}
