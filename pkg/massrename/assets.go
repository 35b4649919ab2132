package massrename

import (
	_ "embed"

	"github.com/BrandonKowalski/massrename/pkg/widget/icon"
)

//go:embed assets/file.svg
var fileSVG []byte

//go:embed assets/warning.svg
var warningSVG []byte

var (
	fileIcon    = icon.Source{Name: "file", Data: fileSVG}
	warningIcon = icon.Source{Name: "warning", Data: warningSVG}
)
