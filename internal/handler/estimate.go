package handler

import (
	"context"
	"net/http"
	"time"

	"moving-estimate-api/internal/models"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// EstimateHandler prices and registers moving estimates
type EstimateHandler struct {
	service EstimateService
}

// EstimateService interface for dependency injection
type EstimateService interface {
	Quote(ctx context.Context, req models.EstimateRequest) (models.Estimate, error)
	Register(ctx context.Context, req models.EstimateRequest) (models.Estimate, error)
}

// NewEstimateHandler creates a new estimate handler
func NewEstimateHandler(svc EstimateService) *EstimateHandler {
	return &EstimateHandler{service: svc}
}

type packageLineBody struct {
	PackageID *int `json:"package_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0,lte=10000"`
}

type estimateBody struct {
	CustomerName     string            `json:"customer_name"`
	Tel              string            `json:"tel"`
	Email            string            `json:"email" binding:"omitempty,email"`
	OldPrefectureID  string            `json:"old_prefecture_id" binding:"required"`
	NewPrefectureID  string            `json:"new_prefecture_id" binding:"required"`
	OldAddress       string            `json:"old_address" binding:"required"`
	NewAddress       string            `json:"new_address" binding:"required"`
	PlannedDate      string            `json:"planned_date" binding:"required,datetime=2006-01-02"`
	Packages         []packageLineBody `json:"packages" binding:"dive"`
	OptionServiceIDs []int             `json:"option_service_ids"`
}

func (b estimateBody) toRequest() (models.EstimateRequest, error) {
	date, err := time.Parse(dateLayout, b.PlannedDate)
	if err != nil {
		return models.EstimateRequest{}, err
	}

	packages := make([]models.PackageLine, 0, len(b.Packages))
	for _, p := range b.Packages {
		packages = append(packages, models.PackageLine{PackageID: *p.PackageID, Quantity: p.Quantity})
	}

	return models.EstimateRequest{
		CustomerName:     b.CustomerName,
		Tel:              b.Tel,
		Email:            b.Email,
		OldPrefectureID:  b.OldPrefectureID,
		NewPrefectureID:  b.NewPrefectureID,
		OldAddress:       b.OldAddress,
		NewAddress:       b.NewAddress,
		PlannedDate:      date,
		Packages:         packages,
		OptionServiceIDs: b.OptionServiceIDs,
	}, nil
}

func bindEstimate(c *gin.Context) (models.EstimateRequest, bool) {
	var body estimateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.EstimateRequest{}, false
	}

	req, err := body.toRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planned_date must be YYYY-MM-DD"})
		return models.EstimateRequest{}, false
	}
	return req, true
}

// Quote handles POST /estimates/quote requests
//
//	@Summary	Price a move without registering it
//	@Accept		json
//	@Produce	json
//	@Success	200				{object}	models.Estimate
//	@Failure	400,422,500,502	{object}	map[string]string
//	@Router		/estimates/quote [post]
func (h *EstimateHandler) Quote(c *gin.Context) {
	req, ok := bindEstimate(c)
	if !ok {
		return
	}

	estimate, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// Register handles POST /estimates requests
//
//	@Summary	Price a move and register the customer
//	@Accept		json
//	@Produce	json
//	@Success	201				{object}	models.Estimate
//	@Failure	400,422,500,502	{object}	map[string]string
//	@Router		/estimates [post]
func (h *EstimateHandler) Register(c *gin.Context) {
	req, ok := bindEstimate(c)
	if !ok {
		return
	}

	estimate, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, estimate)
}
