package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"seo-audit-backend/internal/delivery/http/response"
	"seo-audit-backend/internal/domain"
	"seo-audit-backend/pkg/apperror"
	"seo-audit-backend/pkg/metrics"
	"seo-audit-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewSubmissionHandler registers the audit form routes (public, no auth required)
func NewSubmissionHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &SubmissionHandler{
		submissionUC: submissionUC,
	}

	public.POST("/submissions", handler.Submit)
	public.POST("/contact", handler.Submit)
	public.GET("/country-codes", handler.CountryCodes)
}

// Submit godoc
// @Summary      Submit SEO Audit Form
// @Description  Validates an audit request and relays it to the audit team by email.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.SubmissionRequest  true  "Audit request"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      422         {object}  response.Response
// @Failure      502         {object}  response.Response
// @Router       /submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req domain.SubmissionRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(apperror.PayloadTooLarge(err))
			return
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			h.rejectMistyped(c)
			return
		}
		_ = c.Error(apperror.BadRequest("Invalid request body", err))
		return
	}

	result := h.submissionUC.Submit(c.Request.Context(), &req)
	response.Submission(c, statusFor(result), result)
}

// rejectMistyped answers a body where some fields have the wrong JSON type.
// The remaining fields are still validated so the client gets every
// violation in one response.
func (h *SubmissionHandler) rejectMistyped(c *gin.Context) {
	body, _ := c.Get(gin.BodyBytesKey)
	raw, _ := body.([]byte)

	var req domain.SubmissionRequest
	typeErrs, err := validation.DecodeFields(raw, &req)
	if err != nil {
		_ = c.Error(apperror.BadRequest("Invalid request body", err))
		return
	}

	result := domain.SubmissionInvalid(validation.MergeFieldErrors(&req, typeErrs, h.submissionUC.Validate(&req)))
	metrics.ObserveSubmission(result.Outcome.String())
	response.Submission(c, statusFor(result), result)
}

// CountryCodes godoc
// @Summary      List dialing codes
// @Description  Dialing codes offered by the form. The first entry is the default.
// @Tags         submissions
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /country-codes [get]
func (h *SubmissionHandler) CountryCodes(c *gin.Context) {
	response.Success(c, http.StatusOK, "Country codes", domain.CountryCodes)
}

func statusFor(result domain.SubmissionResult) int {
	switch result.Outcome {
	case domain.OutcomeSuccess:
		return http.StatusOK
	case domain.OutcomeValidationFailure:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
