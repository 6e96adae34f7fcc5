// file: internals/features/contracts/templates/model/contract_template_model_test.go
package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Satu template per pasangan tahun ditegakkan di DB, bukan cuma oleh
// pre-check controller; dua field tahun harus berbagi index unik yang sama
// (partial, baris soft-delete dikecualikan).
func TestYearPairUniqueIndex(t *testing.T) {
	typ := reflect.TypeOf(ContractTemplateModel{})

	year, ok := typ.FieldByName("ContractTemplateYear")
	require.True(t, ok)
	hijri, ok := typ.FieldByName("ContractTemplateYearHijri")
	require.True(t, ok)

	const idx = "uniqueIndex:uq_contract_templates_year_pair"
	assert.Contains(t, year.Tag.Get("gorm"), idx)
	assert.Contains(t, hijri.Tag.Get("gorm"), idx)
	assert.Contains(t, year.Tag.Get("gorm"), "where:contract_template_deleted_at IS NULL")
	assert.Contains(t, hijri.Tag.Get("gorm"), "where:contract_template_deleted_at IS NULL")
}
