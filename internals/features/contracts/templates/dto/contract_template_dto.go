// file: internals/features/contracts/templates/dto/contract_template_dto.go
package dto

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"ithra_backend/internals/features/contracts/templates/model"
)

/* =======================
   Year validation
======================= */

var yearPairRegex = regexp.MustCompile(`^\d{4}-\d{4}$`)

const (
	ErrYearsRequired  = "يرجى إدخال السنة الدراسية الميلادية والهجرية"
	ErrYearFormat     = "يرجى إدخال السنة الدراسية بالصيغة الصحيحة (مثال: 2024-2025)"
	ErrYearOrder      = "يجب أن تكون السنة الثانية أكبر من السنة الأولى"
	ErrYearOrderHijri = "يجب أن تكون السنة الهجرية الثانية أكبر من السنة الهجرية الأولى"
)

// ValidateYearPair menjalankan cek yang sama dengan dialog "عقد جديد" lama,
// urutannya dipertahankan: presence -> format keduanya -> urutan masehi ->
// urutan hijriah. Tidak ada network call sebelum semua lolos.
func ValidateYearPair(year, hijri string) error {
	if strings.TrimSpace(year) == "" || strings.TrimSpace(hijri) == "" {
		return fiber.NewError(fiber.StatusBadRequest, ErrYearsRequired)
	}
	if !yearPairRegex.MatchString(year) || !yearPairRegex.MatchString(hijri) {
		return fiber.NewError(fiber.StatusBadRequest, ErrYearFormat)
	}
	if start, end := splitYears(year); end <= start {
		return fiber.NewError(fiber.StatusBadRequest, ErrYearOrder)
	}
	if start, end := splitYears(hijri); end <= start {
		return fiber.NewError(fiber.StatusBadRequest, ErrYearOrderHijri)
	}
	return nil
}

func splitYears(pair string) (int, int) {
	parts := strings.SplitN(pair, "-", 2)
	start, _ := strconv.Atoi(parts[0])
	end, _ := strconv.Atoi(parts[1])
	return start, end
}

// YearString = identifier tahun yang dipakai Draft ("<masehi>_<hijri>").
func YearString(year, hijri string) string {
	return year + "_" + hijri
}

/* =======================
   Harga: string atau angka
======================= */

// FlexString menerima string maupun angka JSON (form lama mengirim dua-duanya)
// dan menyimpannya sebagai string.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(trimmed)
	return nil
}

/* =======================
   Clause seven: list terurut
======================= */

type ClauseSevenItem struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Urutan nama wire lama; posisi slice = index-1.
var clauseSevenWireNames = []string{
	"ClauseSeven_One", "ClauseSeven_Two", "ClauseSeven_Three", "ClauseSeven_Four",
	"ClauseSeven_Five", "ClauseSeven_Six", "ClauseSeven_Seven", "ClauseSeven_Eight",
	"ClauseSeven_Nine", "ClauseSeven_Ten", "ClauseSeven_Eleven", "ClauseSeven_Twelve",
}

const ClauseSevenCount = 12

func clauseSevenToJSON(texts [ClauseSevenCount]string) (datatypes.JSON, error) {
	items := make([]ClauseSevenItem, 0, ClauseSevenCount)
	for i, text := range texts {
		items = append(items, ClauseSevenItem{Index: i + 1, Text: text})
	}
	raw, err := json.Marshal(items)
	return datatypes.JSON(raw), err
}

func clauseSevenFromJSON(raw datatypes.JSON) [ClauseSevenCount]string {
	var texts [ClauseSevenCount]string
	if len(raw) == 0 {
		return texts
	}
	var items []ClauseSevenItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return texts
	}
	for _, it := range items {
		if it.Index >= 1 && it.Index <= ClauseSevenCount {
			texts[it.Index-1] = it.Text
		}
	}
	return texts
}

/* =======================
   Request DTO
======================= */

// Field-nama wire mengikuti form lama apa adanya (termasuk kapitalisasi
// campur ClauseEight_caseThree_Percentage).
type ContractTemplateRequestDTO struct {
	ContractYear      string `json:"contractYear"`
	ContractYearHijri string `json:"contractYearHijri"`
	IsActive          *bool  `json:"isActive,omitempty"`

	ClausesFour string `json:"clausesFour"`

	KinderPriceNumber     FlexString `json:"KinderPrice_Number"`
	KinderPriceText       string     `json:"KinderPrice_Text"`
	ElementaryPriceNumber FlexString `json:"ElementaryPrice_Number"`
	ElementaryPriceText   string     `json:"ElementaryPrice_Text"`
	MiddlePriceNumber     FlexString `json:"MiddlePrice_Number"`
	MiddlePriceText       string     `json:"MiddlePrice_Text"`
	HighPriceNumber       FlexString `json:"HighPrice_Number"`
	HighPriceText         string     `json:"HighPrice_Text"`

	OnePathPrice    FlexString `json:"OnePath_Price"`
	TwoPathPrice    FlexString `json:"TwoPath_Price"`
	OnePathTaxPrice FlexString `json:"OnePathTax_Price"`
	TwoPathTaxPrice FlexString `json:"TwoPathTax_Price"`

	ClauseSevenOne    string `json:"ClauseSeven_One"`
	ClauseSevenTwo    string `json:"ClauseSeven_Two"`
	ClauseSevenThree  string `json:"ClauseSeven_Three"`
	ClauseSevenFour   string `json:"ClauseSeven_Four"`
	ClauseSevenFive   string `json:"ClauseSeven_Five"`
	ClauseSevenSix    string `json:"ClauseSeven_Six"`
	ClauseSevenSeven  string `json:"ClauseSeven_Seven"`
	ClauseSevenEight  string `json:"ClauseSeven_Eight"`
	ClauseSevenNine   string `json:"ClauseSeven_Nine"`
	ClauseSevenTen    string `json:"ClauseSeven_Ten"`
	ClauseSevenEleven string `json:"ClauseSeven_Eleven"`
	ClauseSevenTwelve string `json:"ClauseSeven_Twelve"`

	ClauseEightOne string `json:"ClauseEight_One"`
	ClauseEightTwo string `json:"ClauseEight_Two"`

	WithdrawCaseOnePrice        FlexString `json:"ClauseEight_CaseOne_Price"`
	WithdrawCaseThreePercentage FlexString `json:"ClauseEight_caseThree_Percentage"`
	WithdrawCaseFourPercentage  FlexString `json:"ClauseEight_caseFour_Percentage"`
}

func (r *ContractTemplateRequestDTO) Normalize() {
	r.ContractYear = strings.TrimSpace(r.ContractYear)
	r.ContractYearHijri = strings.TrimSpace(r.ContractYearHijri)
}

func (r *ContractTemplateRequestDTO) clauseSevenTexts() [ClauseSevenCount]string {
	return [ClauseSevenCount]string{
		r.ClauseSevenOne, r.ClauseSevenTwo, r.ClauseSevenThree, r.ClauseSevenFour,
		r.ClauseSevenFive, r.ClauseSevenSix, r.ClauseSevenSeven, r.ClauseSevenEight,
		r.ClauseSevenNine, r.ClauseSevenTen, r.ClauseSevenEleven, r.ClauseSevenTwelve,
	}
}

func (r *ContractTemplateRequestDTO) ToModel() (model.ContractTemplateModel, error) {
	clauseSeven, err := clauseSevenToJSON(r.clauseSevenTexts())
	if err != nil {
		return model.ContractTemplateModel{}, err
	}
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return model.ContractTemplateModel{
		ContractTemplateYear:        r.ContractYear,
		ContractTemplateYearHijri:   r.ContractYearHijri,
		ContractTemplateIsActive:    isActive,
		ContractTemplateClausesFour: r.ClausesFour,

		ContractTemplateKinderPriceNumber:     string(r.KinderPriceNumber),
		ContractTemplateKinderPriceText:       r.KinderPriceText,
		ContractTemplateElementaryPriceNumber: string(r.ElementaryPriceNumber),
		ContractTemplateElementaryPriceText:   r.ElementaryPriceText,
		ContractTemplateMiddlePriceNumber:     string(r.MiddlePriceNumber),
		ContractTemplateMiddlePriceText:       r.MiddlePriceText,
		ContractTemplateHighPriceNumber:       string(r.HighPriceNumber),
		ContractTemplateHighPriceText:         r.HighPriceText,

		ContractTemplateOnePathPrice:    string(r.OnePathPrice),
		ContractTemplateTwoPathPrice:    string(r.TwoPathPrice),
		ContractTemplateOnePathTaxPrice: string(r.OnePathTaxPrice),
		ContractTemplateTwoPathTaxPrice: string(r.TwoPathTaxPrice),

		ContractTemplateClauseSeven: clauseSeven,

		ContractTemplateClauseEightOne: r.ClauseEightOne,
		ContractTemplateClauseEightTwo: r.ClauseEightTwo,

		ContractTemplateWithdrawCaseOnePrice:        string(r.WithdrawCaseOnePrice),
		ContractTemplateWithdrawCaseThreePercentage: string(r.WithdrawCaseThreePercentage),
		ContractTemplateWithdrawCaseFourPercentage:  string(r.WithdrawCaseFourPercentage),
	}, nil
}

// ApplyUpdates: PUT mengirim formData utuh, jadi semua field teks/harga
// ditimpa; tahun hanya diganti kalau dikirim dan lolos validasi caller.
func (r *ContractTemplateRequestDTO) ApplyUpdates(ent *model.ContractTemplateModel) error {
	if r.ContractYear != "" {
		ent.ContractTemplateYear = r.ContractYear
	}
	if r.ContractYearHijri != "" {
		ent.ContractTemplateYearHijri = r.ContractYearHijri
	}
	if r.IsActive != nil {
		ent.ContractTemplateIsActive = *r.IsActive
	}

	clauseSeven, err := clauseSevenToJSON(r.clauseSevenTexts())
	if err != nil {
		return err
	}
	ent.ContractTemplateClausesFour = r.ClausesFour

	ent.ContractTemplateKinderPriceNumber = string(r.KinderPriceNumber)
	ent.ContractTemplateKinderPriceText = r.KinderPriceText
	ent.ContractTemplateElementaryPriceNumber = string(r.ElementaryPriceNumber)
	ent.ContractTemplateElementaryPriceText = r.ElementaryPriceText
	ent.ContractTemplateMiddlePriceNumber = string(r.MiddlePriceNumber)
	ent.ContractTemplateMiddlePriceText = r.MiddlePriceText
	ent.ContractTemplateHighPriceNumber = string(r.HighPriceNumber)
	ent.ContractTemplateHighPriceText = r.HighPriceText

	ent.ContractTemplateOnePathPrice = string(r.OnePathPrice)
	ent.ContractTemplateTwoPathPrice = string(r.TwoPathPrice)
	ent.ContractTemplateOnePathTaxPrice = string(r.OnePathTaxPrice)
	ent.ContractTemplateTwoPathTaxPrice = string(r.TwoPathTaxPrice)

	ent.ContractTemplateClauseSeven = clauseSeven

	ent.ContractTemplateClauseEightOne = r.ClauseEightOne
	ent.ContractTemplateClauseEightTwo = r.ClauseEightTwo

	ent.ContractTemplateWithdrawCaseOnePrice = string(r.WithdrawCaseOnePrice)
	ent.ContractTemplateWithdrawCaseThreePercentage = string(r.WithdrawCaseThreePercentage)
	ent.ContractTemplateWithdrawCaseFourPercentage = string(r.WithdrawCaseFourPercentage)
	return nil
}

/* =======================
   Response DTO
======================= */

// Response memakai nama wire lama supaya front-end existing tetap jalan;
// butir pasal tujuh di-flatten balik dari list terurut.
type ContractTemplateResponseDTO map[string]any

func FromModel(ent model.ContractTemplateModel) ContractTemplateResponseDTO {
	out := ContractTemplateResponseDTO{
		"_id":               ent.ContractTemplateID,
		"contractYear":      ent.ContractTemplateYear,
		"contractYearHijri": ent.ContractTemplateYearHijri,
		"isActive":          ent.ContractTemplateIsActive,
		"clausesFour":       ent.ContractTemplateClausesFour,

		"KinderPrice_Number":     ent.ContractTemplateKinderPriceNumber,
		"KinderPrice_Text":       ent.ContractTemplateKinderPriceText,
		"ElementaryPrice_Number": ent.ContractTemplateElementaryPriceNumber,
		"ElementaryPrice_Text":   ent.ContractTemplateElementaryPriceText,
		"MiddlePrice_Number":     ent.ContractTemplateMiddlePriceNumber,
		"MiddlePrice_Text":       ent.ContractTemplateMiddlePriceText,
		"HighPrice_Number":       ent.ContractTemplateHighPriceNumber,
		"HighPrice_Text":         ent.ContractTemplateHighPriceText,

		"OnePath_Price":    ent.ContractTemplateOnePathPrice,
		"TwoPath_Price":    ent.ContractTemplateTwoPathPrice,
		"OnePathTax_Price": ent.ContractTemplateOnePathTaxPrice,
		"TwoPathTax_Price": ent.ContractTemplateTwoPathTaxPrice,

		"ClauseEight_One": ent.ContractTemplateClauseEightOne,
		"ClauseEight_Two": ent.ContractTemplateClauseEightTwo,

		"ClauseEight_CaseOne_Price":        ent.ContractTemplateWithdrawCaseOnePrice,
		"ClauseEight_caseThree_Percentage": ent.ContractTemplateWithdrawCaseThreePercentage,
		"ClauseEight_caseFour_Percentage":  ent.ContractTemplateWithdrawCaseFourPercentage,

		"createdAt": ent.ContractTemplateCreatedAt.Format(time.RFC3339),
	}
	texts := clauseSevenFromJSON(ent.ContractTemplateClauseSeven)
	for i, name := range clauseSevenWireNames {
		out[name] = texts[i]
	}
	return out
}

// YearStringOf mengembalikan identifier tahun milik satu template.
func YearStringOf(ent model.ContractTemplateModel) string {
	return YearString(ent.ContractTemplateYear, ent.ContractTemplateYearHijri)
}
