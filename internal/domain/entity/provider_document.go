package entity

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ProviderDocumentType is the kind of identification number a provider holds.
type ProviderDocumentType string

const (
	ProviderDocumentTypeCPF      ProviderDocumentType = "cpf"
	ProviderDocumentTypeCNPJ     ProviderDocumentType = "cnpj"
	ProviderDocumentTypeRG       ProviderDocumentType = "rg"
	ProviderDocumentTypeCNH      ProviderDocumentType = "cnh"
	ProviderDocumentTypePassport ProviderDocumentType = "passport"
	ProviderDocumentTypeOther    ProviderDocumentType = "other"
)

// ParseProviderDocumentType converts user input into a ProviderDocumentType.
func ParseProviderDocumentType(s string) (ProviderDocumentType, error) {
	t := ProviderDocumentType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case ProviderDocumentTypeCPF, ProviderDocumentTypeCNPJ, ProviderDocumentTypeRG,
		ProviderDocumentTypeCNH, ProviderDocumentTypePassport, ProviderDocumentTypeOther:
		return t, nil
	default:
		return "", errors.Wrapf(ErrInvalidInput, "unknown document type %q", s)
	}
}

// ProviderDocument is a document reference held by the provider aggregate.
type ProviderDocument struct {
	Type      ProviderDocumentType `json:"type"`
	Number    string               `json:"number"`
	IsPrimary bool                 `json:"is_primary"`
}

// NewProviderDocument validates and normalizes the number for its type.
func NewProviderDocument(docType ProviderDocumentType, number string, isPrimary bool) (ProviderDocument, error) {
	normalized, err := NormalizeDocumentNumber(docType, number)
	if err != nil {
		return ProviderDocument{}, err
	}

	return ProviderDocument{
		Type:      docType,
		Number:    normalized,
		IsPrimary: isPrimary,
	}, nil
}

// ProviderService is a service offered by a provider.
type ProviderService struct {
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
}

const (
	cpfLength         = 11
	cnpjLength        = 14
	genericMinLength  = 5
	genericMaxLength  = 20
	numberPunctuation = ".-/ "
)

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// NormalizeDocumentNumber strips formatting characters and validates the number
// against the rules of its type: check digits for CPF and CNPJ, length and
// character set for the rest.
func NormalizeDocumentNumber(docType ProviderDocumentType, raw string) (string, error) {
	number := strings.Map(func(r rune) rune {
		if strings.ContainsRune(numberPunctuation, r) {
			return -1
		}

		return unicode.ToUpper(r)
	}, strings.TrimSpace(raw))

	if number == "" {
		return "", errors.Wrapf(ErrInvalidDocumentNumber, "%s number is required", docType)
	}

	switch docType {
	case ProviderDocumentTypeCPF:
		if !isValidCPF(number) {
			return "", errors.Wrap(ErrInvalidDocumentNumber, "invalid CPF")
		}
	case ProviderDocumentTypeCNPJ:
		if !isValidCNPJ(number) {
			return "", errors.Wrap(ErrInvalidDocumentNumber, "invalid CNPJ")
		}
	case ProviderDocumentTypeRG, ProviderDocumentTypeCNH, ProviderDocumentTypePassport, ProviderDocumentTypeOther:
		if !isUpperAlphanumeric(number) || len(number) < genericMinLength || len(number) > genericMaxLength {
			return "", errors.Wrapf(ErrInvalidDocumentNumber, "invalid %s number", docType)
		}
	default:
		return "", errors.Wrapf(ErrInvalidInput, "unknown document type %q", docType)
	}

	return number, nil
}

func isValidCPF(number string) bool {
	digits, ok := toDigits(number, cpfLength)
	if !ok || allEqual(digits) {
		return false
	}

	return cpfCheckDigit(digits[:9], 10) == digits[9] &&
		cpfCheckDigit(digits[:10], 11) == digits[10]
}

func cpfCheckDigit(digits []int, startWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (startWeight - i)
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}

	return rest
}

func isValidCNPJ(number string) bool {
	digits, ok := toDigits(number, cnpjLength)
	if !ok || allEqual(digits) {
		return false
	}

	return cnpjCheckDigit(digits[:12], cnpjFirstWeights) == digits[12] &&
		cnpjCheckDigit(digits[:13], cnpjSecondWeights) == digits[13]
}

func cnpjCheckDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}

	rest := sum % 11
	if rest < 2 {
		return 0
	}

	return 11 - rest
}

func toDigits(number string, length int) ([]int, bool) {
	if len(number) != length {
		return nil, false
	}

	digits := make([]int, length)
	for i, r := range number {
		if r < '0' || r > '9' {
			return nil, false
		}
		digits[i] = int(r - '0')
	}

	return digits, true
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}

	return true
}

// isUpperAlphanumeric accepts only ASCII [A-Z0-9], which also makes len a character count.
func isUpperAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}
