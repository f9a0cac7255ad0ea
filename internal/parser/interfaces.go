package parser

import "github.com/toyz/fwdgen/internal/models"

// DeclarationParser turns a reflect region into ordered method signatures
type DeclarationParser interface {
	Parse(region models.RawRegion) ([]models.MethodSignature, error)
}
