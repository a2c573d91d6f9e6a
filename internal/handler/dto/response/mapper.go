package response

import (
	"github.com/jinzhu/copier"
)

// copyFields copies same-named fields from src into dst. Fields tagged
// `copier:"-"` are filled by the caller.
func copyFields(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		panic("response mapping: " + err.Error())
	}
}

func centsToDecimal(cents int64) float64 {
	return float64(cents) / 100.0
}

type MessageResponse struct {
	Message string `json:"message"`
}
