// file: internals/features/contracts/contracts/dto/contract_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ContractRequestDTO {
	contact := ContactPersonDTO{Name: "سعد", Relationship: "عم", MobileNumber: "0550000001"}
	return ContractRequestDTO{
		ContractYear: "2025-2026_1447-1448",
		Guardian: GuardianDTO{
			Name:               "محمد العتيبي",
			IDNumber:           "1012345678",
			Relationship:       "أب",
			AbsherMobileNumber: "0551234567",
			ResidentialAddress: "الرياض - حي النرجس",
			ContactPersons:     []ContactPersonDTO{contact, {Name: "خالد", Relationship: "خال", MobileNumber: "0550000002"}},
		},
		ContractEditor: ContractEditorDTO{
			Name:               "محمد العتيبي",
			IDNumber:           "1012345678",
			Relationship:       "أب",
			AbsherMobileNumber: "0551234567",
			ResidentialAddress: "الرياض - حي النرجس",
		},
		Student: StudentDTO{
			Name:           "أحمد محمد",
			Nationality:    "سعودي",
			BirthPlace:     "الرياض",
			BirthDate:      "2015-03-01",
			IDNumber:       "1109876543",
			IDIssueDate:    "2016-01-01",
			IDIssuePlace:   "الرياض",
			RequiredSchool: "بنين",
			RequiredStage:  "ابتدائي",
			RequiredGrade:  "الرابع",
			Siblings:       []SiblingDTO{{}},
		},
		Payment: PaymentDTO{
			PaymentType: PaymentAnnual,
			Transportation: TransportationDTO{
				Required:     true,
				Neighborhood: "النرجس",
				Path:         PathOne,
			},
		},
	}
}

func TestTransportationNormalize(t *testing.T) {
	t.Run("not required resets fields", func(t *testing.T) {
		tr := TransportationDTO{Required: false, Neighborhood: "النرجس", Path: PathTwo}
		tr.Normalize()
		assert.Empty(t, tr.Neighborhood)
		assert.Empty(t, tr.Path)
	})

	t.Run("required with empty path defaults to one path", func(t *testing.T) {
		tr := TransportationDTO{Required: true, Neighborhood: "النرجس"}
		tr.Normalize()
		assert.Equal(t, PathOne, tr.Path)
		assert.Equal(t, "النرجس", tr.Neighborhood)
	})

	t.Run("required keeps chosen path", func(t *testing.T) {
		tr := TransportationDTO{Required: true, Neighborhood: "النرجس", Path: PathTwo}
		tr.Normalize()
		assert.Equal(t, PathTwo, tr.Path)
	})
}

func TestContractRequestValidate(t *testing.T) {
	v := validator.New()

	t.Run("valid request passes", func(t *testing.T) {
		req := validRequest()
		req.Normalize()
		assert.NoError(t, req.Validate(v))
	})

	t.Run("missing guardian name reports field", func(t *testing.T) {
		req := validRequest()
		req.Guardian.Name = ""
		err := req.Validate(v)
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Contains(t, fe.Message, "Name")
	})

	t.Run("exactly two contact persons required", func(t *testing.T) {
		req := validRequest()
		req.Guardian.ContactPersons = req.Guardian.ContactPersons[:1]
		assert.Error(t, req.Validate(v))
	})

	t.Run("payment type limited to annual or quarterly", func(t *testing.T) {
		req := validRequest()
		req.Payment.PaymentType = "Monthly"
		assert.Error(t, req.Validate(v))
	})

	t.Run("transportation required needs neighborhood", func(t *testing.T) {
		req := validRequest()
		req.Payment.Transportation = TransportationDTO{Required: true, Path: PathOne}
		err := req.Validate(v)
		require.Error(t, err)
		assert.Contains(t, err.(*fiber.Error).Message, "neighborhood")
	})

	t.Run("transportation not required skips conditional checks", func(t *testing.T) {
		req := validRequest()
		req.Payment.Transportation = TransportationDTO{Required: false}
		req.Normalize()
		assert.NoError(t, req.Validate(v))
	})
}

func TestToModelFromModelRoundTrip(t *testing.T) {
	req := validRequest()
	req.Normalize()

	ent, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, req.ContractYear, ent.ContractYear)

	resp, err := FromModel(ent)
	require.NoError(t, err)
	assert.Equal(t, req.Guardian.Name, resp.Guardian.Name)
	assert.Equal(t, req.Student.IDNumber, resp.Student.IDNumber)
	assert.Equal(t, PaymentAnnual, resp.Payment.PaymentType)
	assert.Len(t, resp.Guardian.ContactPersons, 2)
}

func TestFromModelFailsClosedOnCorruptColumn(t *testing.T) {
	req := validRequest()
	ent, err := req.ToModel()
	require.NoError(t, err)

	ent.ContractStudent = []byte(`{"name": `)
	_, err = FromModel(ent)
	assert.Error(t, err)
}

func TestFilterRows(t *testing.T) {
	mk := func(guardian, student string) ContractResponseDTO {
		return ContractResponseDTO{
			Guardian: GuardianDTO{Name: guardian, IDNumber: "1012345678"},
			Student:  StudentDTO{Name: student},
		}
	}
	rows := []ContractResponseDTO{
		mk("محمد العتيبي", "أحمد محمد"),
		mk("Fahad Alotaibi", "Omar Fahad"),
		mk("سلمان الدوسري", "بدر سلمان"),
	}

	t.Run("arabic substring match", func(t *testing.T) {
		got := FilterRows(rows, "studentName", "أحمد")
		require.Len(t, got, 1)
		assert.Equal(t, "محمد العتيبي", got[0].Guardian.Name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := FilterRows(rows, "guardianName", "fAhAd")
		require.Len(t, got, 1)
		assert.Equal(t, "Fahad Alotaibi", got[0].Guardian.Name)
	})

	t.Run("only the chosen column is searched", func(t *testing.T) {
		// "Fahad" juga muncul di studentName baris kedua
		got := FilterRows(rows, "studentName", "alotaibi")
		assert.Empty(t, got)
	})

	t.Run("unknown column yields empty result", func(t *testing.T) {
		got := FilterRows(rows, "password", "a")
		assert.Empty(t, got)
	})

	t.Run("empty query returns all rows", func(t *testing.T) {
		got := FilterRows(rows, "guardianName", "   ")
		assert.Len(t, got, 3)
	})
}

func TestColumnValueCoversSearchableColumns(t *testing.T) {
	row := ContractResponseDTO{}
	for _, col := range SearchableColumns {
		_, ok := row.ColumnValue(col)
		assert.True(t, ok, col)
	}
}
