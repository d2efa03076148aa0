package cli

import (
	"encoding/json"
	"time"

	"github.com/golang-module/carbon/v2"
)

const timeLayout = "Y-m-d H:i:s"

func prettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return carbon.Time2Carbon(*t).Format(timeLayout, carbon.UTC)
}
