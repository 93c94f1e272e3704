package controller

import (
	"encoding/json"
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"prediksiku_backend/internals/features/predictions/dto"
	"prediksiku_backend/internals/features/predictions/model"
	"prediksiku_backend/internals/features/predictions/repository"
	helper "prediksiku_backend/internals/helpers"
	"prediksiku_backend/internals/scoring"
)

var validatePrediction = newPredictionValidator()

// newPredictionValidator melaporkan error per nama field JSON,
// bukan nama field struct.
func newPredictionValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validationFieldErrors(err error) map[string][]string {
	fields := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = []string{"Format tidak valid."}
		return fields
	}
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "gte":
			msg = "Minimal " + fe.Param() + "."
		case "lte":
			msg = "Maksimal " + fe.Param() + "."
		default:
			msg = "Format tidak valid."
		}
		fields[fe.Field()] = append(fields[fe.Field()], msg)
	}
	return fields
}

type PredictionController struct {
	DB       *gorm.DB
	Pipeline *scoring.Pipeline
}

func NewPredictionController(db *gorm.DB, pipeline *scoring.Pipeline) *PredictionController {
	return &PredictionController{DB: db, Pipeline: pipeline}
}

// =======================
// ➕ Create Prediction
// =======================
func (ctrl *PredictionController) CreatePrediction(c *fiber.Ctx) error {
	// User wajib terautentikasi — tidak ada fallback id.
	userID, ok := c.Locals("user_id").(uint)
	if !ok || userID == 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var body dto.PredictionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrediction.Struct(&body); err != nil {
		return helper.JsonValidationError(c, validationFieldErrors(err))
	}

	input := scoring.Input{
		Presensi:   body.Presensi,
		NilaiUTS:   body.NilaiUTS,
		NilaiUAS:   body.NilaiUAS,
		NilaiTugas: body.NilaiTugas,
		JamBelajar: body.JamBelajar,
	}
	if input.HasNoScores() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mohon isi minimal satu nilai")
	}

	result, err := ctrl.Pipeline.Compute(input)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung prediksi")
	}

	inputRow := model.DataInputModel{
		UserID:     userID,
		Presensi:   body.Presensi,
		NilaiUTS:   body.NilaiUTS,
		NilaiUAS:   body.NilaiUAS,
		NilaiTugas: body.NilaiTugas,
		JamBelajar: body.JamBelajar,
	}
	hasilRow := model.HasilPrediksiModel{
		NilaiPrediksi: result.NilaiAkhir,
		Grade:         result.Grade,
		ModelInfo:     ctrl.modelInfo(),
	}

	recordID, err := repository.SavePrediction(ctrl.DB, &inputRow, &hasilRow)
	if err != nil {
		// Prediksi sudah dihitung; gagal simpan tidak boleh menyembunyikan
		// hasil, tapi juga tidak boleh pura-pura sukses.
		log.Printf("[ERROR] Gagal simpan prediksi user=%d: %v", userID, err)
		return helper.JsonErrorWithData(c, fiber.StatusServiceUnavailable,
			"Prediksi berhasil dihitung tapi gagal disimpan ke database", dto.PredictionResponse{
				NilaiAkhir: result.NilaiAkhir,
				Grade:      result.Grade,
			})
	}

	return helper.JsonCreated(c, "Prediksi berhasil disimpan", dto.PredictionResponse{
		ID:         recordID,
		NilaiAkhir: result.NilaiAkhir,
		Grade:      result.Grade,
	})
}

// =======================
// 🕐 History (paginated)
// Query: ?page=1&per_page=20
// =======================
func (ctrl *PredictionController) GetHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok || userID == 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	total, err := repository.CountHistoryByUser(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung riwayat")
	}

	rows, err := repository.FindHistoryByUser(ctrl.DB, userID, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	resp := make([]dto.HistoryItemDTO, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.HistoryItemDTO{
			ID:              r.ID,
			TanggalPrediksi: r.TanggalPrediksi,
			Presensi:        r.Presensi,
			NilaiUTS:        r.NilaiUTS,
			NilaiUAS:        r.NilaiUAS,
			NilaiTugas:      r.NilaiTugas,
			JamBelajar:      r.JamBelajar,
			NilaiAkhir:      r.NilaiAkhir,
			Grade:           r.Grade,
		})
	}

	return helper.JsonList(c, "ok", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *PredictionController) modelInfo() datatypes.JSON {
	info, err := json.Marshal(fiber.Map{
		"model_version": ctrl.Pipeline.ModelVersion(),
		"feature_order": ctrl.Pipeline.FeatureOrder(),
	})
	if err != nil {
		return nil
	}
	return datatypes.JSON(info)
}
