// file: internals/features/contracts/contracts/dto/contract_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ithra_backend/internals/features/contracts/contracts/model"
)

/* =======================
   Enum nilai form
======================= */

const (
	PaymentAnnual    = "Annual"
	PaymentQuarterly = "Quarterly"

	PathOne = "One path"
	PathTwo = "Two paths"
)

/* =======================
   Sub-objek form
======================= */

type ContactPersonDTO struct {
	Name         string `json:"name" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required"`
}

type GuardianDTO struct {
	Name                   string             `json:"name" validate:"required"`
	IDNumber               string             `json:"idNumber" validate:"required"`
	Relationship           string             `json:"relationship" validate:"required"`
	AbsherMobileNumber     string             `json:"absherMobileNumber" validate:"required"`
	AdditionalMobileNumber string             `json:"additionalMobileNumber"`
	ResidentialAddress     string             `json:"residentialAddress" validate:"required"`
	Profession             string             `json:"profession"`
	WorkAddress            string             `json:"workAddress"`
	WorkPhoneNumber        string             `json:"workPhoneNumber"`
	Extension              string             `json:"extension"`
	// Form lama selalu mengirim tepat dua orang yang bisa dihubungi
	ContactPersons []ContactPersonDTO `json:"contactPersons" validate:"len=2,dive"`
}

// ContractEditorDTO = GuardianDTO minus contactPersons (muharrir al-'aqd,
// bisa orang yang sama dengan wali).
type ContractEditorDTO struct {
	Name                   string `json:"name" validate:"required"`
	IDNumber               string `json:"idNumber" validate:"required"`
	Relationship           string `json:"relationship" validate:"required"`
	AbsherMobileNumber     string `json:"absherMobileNumber" validate:"required"`
	AdditionalMobileNumber string `json:"additionalMobileNumber"`
	ResidentialAddress     string `json:"residentialAddress" validate:"required"`
	Profession             string `json:"profession"`
	WorkAddress            string `json:"workAddress"`
	WorkPhoneNumber        string `json:"workPhoneNumber"`
	Extension              string `json:"extension"`
}

type SiblingDTO struct {
	Name   string `json:"name"`
	School string `json:"school"`
	Stage  string `json:"stage"`
	Grade  string `json:"grade"`
}

type StudentDTO struct {
	Name        string `json:"name" validate:"required"`
	Nationality string `json:"nationality" validate:"required"`
	BirthPlace  string `json:"birthPlace" validate:"required"`
	BirthDate   string `json:"birthDate" validate:"required"`
	IDNumber    string `json:"idNumber" validate:"required"`
	IDIssueDate  string `json:"idIssueDate" validate:"required"`
	IDIssuePlace string `json:"idIssuePlace" validate:"required"`

	// pointer: form create mengirim null sebelum user memilih
	PreviouslyEnrolled *bool  `json:"previouslyEnrolled"`
	PreviousSchoolName string `json:"previousSchoolName,omitempty"`
	PreviousSchoolCity string `json:"previousSchoolCity,omitempty"`
	PreviousSchoolType string `json:"previousSchoolType,omitempty"`

	RequiredSchool string `json:"requiredSchool" validate:"required"`
	RequiredStage  string `json:"requiredStage" validate:"required"`
	RequiredGrade  string `json:"requiredGrade" validate:"required"`

	HasSiblingsInIthraa bool         `json:"hasSiblingsInIthraa"`
	Siblings            []SiblingDTO `json:"siblings" validate:"min=1"`
}

type TransportationDTO struct {
	Required     bool   `json:"required"`
	Neighborhood string `json:"neighborhood"`
	Path         string `json:"path"`
}

// Normalize menegakkan invariant transportasi:
//   - required=false  => neighborhood & path dikosongkan
//   - required=true   => path kosong di-default "One path"
func (t *TransportationDTO) Normalize() {
	if !t.Required {
		t.Neighborhood = ""
		t.Path = ""
		return
	}
	if strings.TrimSpace(t.Path) == "" {
		t.Path = PathOne
	}
}

type PaymentDTO struct {
	PaymentType    string            `json:"paymentType" validate:"required,oneof=Annual Quarterly"`
	Transportation TransportationDTO `json:"transportation"`
}

/* =======================
   Request DTO (Draft tersusun)
======================= */

type ContractRequestDTO struct {
	ContractYear   string            `json:"contractYear"`
	Guardian       GuardianDTO       `json:"guardian"`
	ContractEditor ContractEditorDTO `json:"contractEditor"`
	Student        StudentDTO        `json:"student"`
	Payment        PaymentDTO        `json:"payment"`
}

func (r *ContractRequestDTO) Normalize() {
	r.ContractYear = strings.TrimSpace(r.ContractYear)
	r.Guardian.Name = strings.TrimSpace(r.Guardian.Name)
	r.ContractEditor.Name = strings.TrimSpace(r.ContractEditor.Name)
	r.Student.Name = strings.TrimSpace(r.Student.Name)
	r.Payment.Transportation.Normalize()
}

// Validate menjalankan validator lalu mengubah kegagalan pertama jadi
// pesan yang sama dengan alert form lama. Transportasi divalidasi manual
// karena required-nya kondisional.
func (r *ContractRequestDTO) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "يرجى ملء الحقل المطلوب: "+ve[0].Field())
		}
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	if t := r.Payment.Transportation; t.Required {
		if strings.TrimSpace(t.Neighborhood) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "يرجى ملء الحقل المطلوب: neighborhood")
		}
		if t.Path != PathOne && t.Path != PathTwo {
			return fiber.NewError(fiber.StatusBadRequest, "يرجى ملء الحقل المطلوب: path")
		}
	}
	return nil
}

// ToModel men-serialize empat sub-objek ke JSONB.
func (r *ContractRequestDTO) ToModel() (model.ContractModel, error) {
	guardian, err := json.Marshal(r.Guardian)
	if err != nil {
		return model.ContractModel{}, err
	}
	editor, err := json.Marshal(r.ContractEditor)
	if err != nil {
		return model.ContractModel{}, err
	}
	student, err := json.Marshal(r.Student)
	if err != nil {
		return model.ContractModel{}, err
	}
	payment, err := json.Marshal(r.Payment)
	if err != nil {
		return model.ContractModel{}, err
	}
	return model.ContractModel{
		ContractYear:     r.ContractYear,
		ContractGuardian: datatypes.JSON(guardian),
		ContractEditor:   datatypes.JSON(editor),
		ContractStudent:  datatypes.JSON(student),
		ContractPayment:  datatypes.JSON(payment),
	}, nil
}

/* =======================
   Response DTO
======================= */

type ContractResponseDTO struct {
	ID             uuid.UUID         `json:"_id"`
	ContractYear   string            `json:"contractYear"`
	Guardian       GuardianDTO       `json:"guardian"`
	ContractEditor ContractEditorDTO `json:"contractEditor"`
	Student        StudentDTO        `json:"student"`
	Payment        PaymentDTO        `json:"payment"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      *time.Time        `json:"updatedAt,omitempty"`
}

// FromModel men-decode JSONB kembali ke bentuk bertipe. Nilai tersimpan
// yang malformed menghasilkan error (fail closed), tidak jadi field kosong.
func FromModel(ent model.ContractModel) (ContractResponseDTO, error) {
	out := ContractResponseDTO{
		ID:           ent.ContractID,
		ContractYear: ent.ContractYear,
		CreatedAt:    ent.ContractCreatedAt,
		UpdatedAt:    ent.ContractUpdatedAt,
	}
	if err := json.Unmarshal(ent.ContractGuardian, &out.Guardian); err != nil {
		return out, err
	}
	if err := json.Unmarshal(ent.ContractEditor, &out.ContractEditor); err != nil {
		return out, err
	}
	if err := json.Unmarshal(ent.ContractStudent, &out.Student); err != nil {
		return out, err
	}
	if err := json.Unmarshal(ent.ContractPayment, &out.Payment); err != nil {
		return out, err
	}
	return out, nil
}

/* =======================
   Listing: flatten + filter
======================= */

// Kolom yang bisa dicari di tabel daftar kontrak (satu kolom per pencarian).
var SearchableColumns = []string{
	"guardianName",
	"guardianId",
	"relationship",
	"registeredPhone",
	"otherPhone",
	"address",
	"contractEditor",
	"editorId",
	"studentName",
	"studentId",
}

// ColumnValue mengembalikan nilai string satu kolom flat dari response.
func (r ContractResponseDTO) ColumnValue(column string) (string, bool) {
	switch column {
	case "guardianName":
		return r.Guardian.Name, true
	case "guardianId":
		return r.Guardian.IDNumber, true
	case "relationship":
		return r.Guardian.Relationship, true
	case "registeredPhone":
		return r.Guardian.AbsherMobileNumber, true
	case "otherPhone":
		return r.Guardian.AdditionalMobileNumber, true
	case "address":
		return r.Guardian.ResidentialAddress, true
	case "contractEditor":
		return r.ContractEditor.Name, true
	case "editorId":
		return r.ContractEditor.IDNumber, true
	case "studentName":
		return r.Student.Name, true
	case "studentId":
		return r.Student.IDNumber, true
	default:
		return "", false
	}
}

// FilterRows: substring match case-insensitive terhadap tepat satu kolom.
// Kolom tak dikenal menghasilkan hasil kosong (fail closed, bukan semua baris).
func FilterRows(rows []ContractResponseDTO, column, query string) []ContractResponseDTO {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}
	out := make([]ContractResponseDTO, 0, len(rows))
	for _, row := range rows {
		val, ok := row.ColumnValue(column)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(val), query) {
			out = append(out, row)
		}
	}
	return out
}
