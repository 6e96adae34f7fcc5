// file: internals/features/contracts/templates/dto/contract_template_dto_test.go
package dto

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYearPair(t *testing.T) {
	t.Run("valid pair passes", func(t *testing.T) {
		assert.NoError(t, ValidateYearPair("2025-2026", "1447-1448"))
	})

	cases := []struct {
		name    string
		year    string
		hijri   string
		wantMsg string
	}{
		{"missing gregorian", "", "1447-1448", ErrYearsRequired},
		{"missing hijri", "2025-2026", "", ErrYearsRequired},
		{"bad gregorian format", "2025/2026", "1447-1448", ErrYearFormat},
		{"bad hijri format", "2025-2026", "1447", ErrYearFormat},
		{"gregorian not ascending", "2026-2025", "1447-1448", ErrYearOrder},
		{"gregorian equal years", "2025-2025", "1447-1448", ErrYearOrder},
		// urutan hijriah dicek sendiri, meski masehinya benar
		{"hijri not ascending", "2025-2026", "1448-1447", ErrYearOrderHijri},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateYearPair(tc.year, tc.hijri)
			require.Error(t, err)
			fe, ok := err.(*fiber.Error)
			require.True(t, ok)
			assert.Equal(t, fiber.StatusBadRequest, fe.Code)
			assert.Equal(t, tc.wantMsg, fe.Message)
		})
	}
}

func TestYearString(t *testing.T) {
	assert.Equal(t, "2025-2026_1447-1448", YearString("2025-2026", "1447-1448"))
}

func TestFlexStringAcceptsStringAndNumber(t *testing.T) {
	var payload struct {
		Price FlexString `json:"KinderPrice_Number"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"KinderPrice_Number": "18000"}`), &payload))
	assert.Equal(t, FlexString("18000"), payload.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"KinderPrice_Number": 18000}`), &payload))
	assert.Equal(t, FlexString("18000"), payload.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"KinderPrice_Number": null}`), &payload))
	assert.Equal(t, FlexString(""), payload.Price)
}

func TestClauseSevenRoundTrip(t *testing.T) {
	req := ContractTemplateRequestDTO{
		ContractYear:      "2025-2026",
		ContractYearHijri: "1447-1448",
		ClauseSevenOne:    "البند الأول",
		ClauseSevenFive:   "البند الخامس",
		ClauseSevenTwelve: "البند الثاني عشر",
	}

	ent, err := req.ToModel()
	require.NoError(t, err)

	// tersimpan sebagai list terurut (index,text), bukan dua belas kolom
	var items []ClauseSevenItem
	require.NoError(t, json.Unmarshal(ent.ContractTemplateClauseSeven, &items))
	require.Len(t, items, ClauseSevenCount)
	assert.Equal(t, 1, items[0].Index)
	assert.Equal(t, "البند الأول", items[0].Text)
	assert.Equal(t, 5, items[4].Index)
	assert.Equal(t, "البند الخامس", items[4].Text)

	// response mem-flatten balik ke nama wire lama
	out := FromModel(ent)
	assert.Equal(t, "البند الأول", out["ClauseSeven_One"])
	assert.Equal(t, "البند الخامس", out["ClauseSeven_Five"])
	assert.Equal(t, "البند الثاني عشر", out["ClauseSeven_Twelve"])
	assert.Equal(t, "", out["ClauseSeven_Two"])
}

func TestFromModelWireNames(t *testing.T) {
	req := ContractTemplateRequestDTO{
		ContractYear:                "2025-2026",
		ContractYearHijri:           "1447-1448",
		KinderPriceNumber:           "18000",
		KinderPriceText:             "ثمانية عشر ألف ريال",
		OnePathPrice:                "3000",
		WithdrawCaseThreePercentage: "25",
	}
	ent, err := req.ToModel()
	require.NoError(t, err)

	out := FromModel(ent)
	assert.Equal(t, "2025-2026", out["contractYear"])
	assert.Equal(t, "1447-1448", out["contractYearHijri"])
	assert.Equal(t, "18000", out["KinderPrice_Number"])
	assert.Equal(t, "ثمانية عشر ألف ريال", out["KinderPrice_Text"])
	assert.Equal(t, "3000", out["OnePath_Price"])
	assert.Equal(t, "25", out["ClauseEight_caseThree_Percentage"])
	assert.Equal(t, true, out["isActive"])
}

func TestApplyUpdatesOverwritesBody(t *testing.T) {
	base := ContractTemplateRequestDTO{
		ContractYear:      "2025-2026",
		ContractYearHijri: "1447-1448",
		ClausesFour:       "نص قديم",
		KinderPriceNumber: "18000",
	}
	ent, err := base.ToModel()
	require.NoError(t, err)

	update := ContractTemplateRequestDTO{
		ClausesFour:       "نص جديد",
		KinderPriceNumber: "19000",
	}
	require.NoError(t, update.ApplyUpdates(&ent))

	// tahun tidak dikirim -> tetap
	assert.Equal(t, "2025-2026", ent.ContractTemplateYear)
	assert.Equal(t, "نص جديد", ent.ContractTemplateClausesFour)
	assert.Equal(t, "19000", ent.ContractTemplateKinderPriceNumber)
}
