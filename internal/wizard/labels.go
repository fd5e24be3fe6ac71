package wizard

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// label turns an enum key such as "contract" into "Contract".
func label(key string) string {
	return titleCaser.String(key)
}
