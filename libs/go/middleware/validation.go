package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"

	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
)

// Rule types understood by ValidateInput.
const (
	TypeString  = "string"
	TypeBool    = "bool"
	TypeUint    = "uint"
	TypeAddress = "address"
	TypeAmount  = "amount"
	TypeHex     = "hex"
)

// ValidationRule defines a single validation rule
type ValidationRule struct {
	Field    string // Field name to validate
	Required bool   // Whether the field is required
	Type     string // One of the Type* constants
	// HexBytes is the decoded length a TypeHex field must have, when set.
	HexBytes int
	// Max bounds a TypeUint field, when set.
	Max    *uint64
	Custom func(interface{}) error // Custom validation function
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64 // Maximum request body size in bytes
	AllowUnknownFields bool  // Whether to allow fields not in rules
}

// ValidationError is a single field failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the 400 body written by ValidateInput.
type ValidationErrors struct {
	Error         string            `json:"error"`
	Errors        []ValidationError `json:"errors"`
	CorrelationID string            `json:"correlation_id,omitempty"`
}

// ValidateInput checks a JSON body against config before the handler binds
// it. The body is restored so the handler can read it again.
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		reader := io.Reader(c.Request.Body)
		if config.MaxBodySize > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				abortTooLarge(c, config.MaxBodySize)
				return
			}
			reader = io.LimitReader(c.Request.Body, config.MaxBodySize+1)
		}

		raw, err := io.ReadAll(reader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}
		if config.MaxBodySize > 0 && int64(len(raw)) > config.MaxBodySize {
			abortTooLarge(c, config.MaxBodySize)
			return
		}

		var body map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":          "Invalid JSON in request body",
				"correlation_id": GetCorrelationID(c),
			})
			return
		}

		if errs := validateFields(body, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{
				Error:         "Invalid request body",
				Errors:        errs,
				CorrelationID: GetCorrelationID(c),
			})
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		c.Next()
	}
}

func abortTooLarge(c *gin.Context, limit int64) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
		"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", limit),
	})
}

// validateFields validates the fields according to the rules
func validateFields(data map[string]interface{}, rules []ValidationRule, allowUnknown bool) []ValidationError {
	var errs []ValidationError
	known := make(map[string]bool, len(rules))

	for _, rule := range rules {
		known[rule.Field] = true
		value, exists := data[rule.Field]

		if !exists || value == nil || value == "" {
			if rule.Required {
				errs = append(errs, ValidationError{Field: rule.Field, Message: fmt.Sprintf("%s is required", rule.Field)})
			}
			continue
		}

		var err error
		switch rule.Type {
		case TypeString:
			if _, ok := value.(string); !ok {
				err = fmt.Errorf("must be a string")
			}
		case TypeBool:
			if _, ok := value.(bool); !ok {
				err = fmt.Errorf("must be a boolean")
			}
		case TypeUint:
			err = validateUint(value, rule.Max)
		case TypeAddress:
			err = validateAddress(value)
		case TypeAmount:
			err = validateAmount(value)
		case TypeHex:
			err = validateHex(value, rule.HexBytes)
		}
		if err == nil && rule.Custom != nil {
			err = rule.Custom(value)
		}
		if err != nil {
			errs = append(errs, ValidationError{Field: rule.Field, Message: err.Error()})
		}
	}

	if !allowUnknown {
		for field := range data {
			if !known[field] {
				errs = append(errs, ValidationError{Field: field, Message: "unknown field"})
			}
		}
	}
	return errs
}

func validateUint(value interface{}, max *uint64) error {
	num, ok := value.(json.Number)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	n, ok := new(big.Int).SetString(num.String(), 10)
	if !ok || n.Sign() < 0 || !n.IsUint64() {
		return fmt.Errorf("must be a non-negative integer")
	}
	if max != nil && n.Uint64() > *max {
		return fmt.Errorf("must be at most %d", *max)
	}
	return nil
}

func validateAddress(value interface{}) error {
	s, ok := value.(string)
	if !ok || !helpers.IsAddressValid(strings.TrimSpace(s)) {
		return fmt.Errorf("must be a 0x-prefixed 20 byte hex address")
	}
	return nil
}

// validateAmount accepts a base-10 string; amounts exceed float precision
// so JSON numbers are refused.
func validateAmount(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a decimal string")
	}
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return fmt.Errorf("must be a decimal string")
	}
	if v.Sign() <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateHex(value interface{}, size int) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a hex string")
	}
	b, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be 0x-prefixed hex")
	}
	if size > 0 && len(b) != size {
		return fmt.Errorf("must be %d bytes", size)
	}
	return nil
}
