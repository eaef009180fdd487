package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"equipment-system/pkg/constants"
)

func TestFormatDocumentNumber(t *testing.T) {
	assert.Equal(t, "REQ-000001", FormatDocumentNumber(constants.RequestNumberPrefix, 1))
	assert.Equal(t, "TXN-000042", FormatDocumentNumber(constants.TransactionNumberPrefix, 42))
	assert.Equal(t, "REQ-123456", FormatDocumentNumber(constants.RequestNumberPrefix, 123456))
	// Номер за пределами шести знаков не обрезается.
	assert.Equal(t, "TXN-1234567", FormatDocumentNumber(constants.TransactionNumberPrefix, 1234567))
}
