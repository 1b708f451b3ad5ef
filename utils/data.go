package utils

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString converts an orderedmap to a string in the form [k=v k2=v2], keeping the insertion
// order of the keys.
func OrderedMapToString(data *orderedmap.OrderedMap[string, any]) string {
	if data == nil {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for el := data.Front(); el != nil; el = el.Next() {
		if el != data.Front() {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%s=%v", el.Key, el.Value))
	}
	sb.WriteByte(']')
	return sb.String()
}
