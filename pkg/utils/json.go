package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson indenta com tabs. O jsoniter só indenta com espaços, por isso a
// indentação fica com encoding/json sobre o resultado do Marshal.
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		if buffer, err = json.Marshal(in); err != nil {
			return ""
		}
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "\t"); err != nil {
		return string(buffer)
	}

	return out.String()
}
