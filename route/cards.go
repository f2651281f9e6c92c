package route

import (
	"fmt"
	"net/http"

	"git.thinkinpower.net/bingen/card"
	"git.thinkinpower.net/bingen/mod"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

func (s *server) generate(ctx *gin.Context) {
	var body mod.GenerateBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		logger.Warnf("bind generate body: %s", err)
		ctx.JSON(http.StatusBadRequest, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "invalid request body"})
		return
	}
	cards, ok := s.generateCards(ctx, body.Request())
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "success"},
		Data:          mod.CardBatch{Count: len(cards), Cards: cards},
	})
}

//导出: format=csv(默认) 或 pipe
func (s *server) export(ctx *gin.Context) {
	var body mod.GenerateBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "invalid request body"})
		return
	}
	format := ctx.DefaultQuery("format", "csv")
	if format != "csv" && format != "pipe" {
		ctx.JSON(http.StatusBadRequest, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: fmt.Sprintf("unsupported format %s", format)})
		return
	}
	cards, ok := s.generateCards(ctx, body.Request())
	if !ok {
		return
	}

	var err error
	if format == "pipe" {
		ctx.Header("Content-Type", "text/plain; charset=utf-8")
		ctx.Status(http.StatusOK)
		err = card.WritePipe(ctx.Writer, cards)
	} else {
		filename := fmt.Sprintf("credit-cards-%d.csv", s.now().UnixMilli())
		ctx.Header("Content-Type", "text/csv")
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		ctx.Status(http.StatusOK)
		err = card.WriteCSV(ctx.Writer, cards)
	}
	if err != nil {
		logger.Errorf("export %d cards: %s", len(cards), err)
		_ = ctx.Error(err)
	}
}

func (s *server) classify(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "success"},
		Data:          card.Describe(ctx.Param("number")),
	})
}

func (s *server) validate(ctx *gin.Context) {
	number := ctx.Param("number")
	result := mod.CardValidation{Valid: card.Validate(number), Network: card.Classify(number)}
	logger.Debugf("validate %s: %t", card.Mask(card.CleanDigits(number)), result.Valid)
	ctx.JSON(http.StatusOK, mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "success"},
		Data:          result,
	})
}

// generateCards validates req and runs a fresh generator over it. It writes
// the error response itself and reports false when nothing was generated.
func (s *server) generateCards(ctx *gin.Context, req mod.GenerationRequest) ([]mod.CardRecord, bool) {
	if err := card.ValidateRequest(req, s.now()); err != nil {
		var fieldErrs card.FieldErrors
		if errors.As(err, &fieldErrs) {
			ctx.JSON(http.StatusBadRequest, mod.ResponseErrors{
				ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "invalid params"},
				Errors:        fieldErrs,
			})
			return nil, false
		}
		ctx.JSON(http.StatusBadRequest, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: err.Error()})
		return nil, false
	}

	cards, err := s.newGenerator().Generate(req)
	if err != nil {
		if errors.Cause(err) == card.ErrInvalidBin {
			ctx.JSON(http.StatusBadRequest, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: err.Error()})
			return nil, false
		}
		logger.Errorf("generate cards for bin %s: %s", req.Bin, err)
		ctx.JSON(http.StatusInternalServerError, mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: "failed"})
		return nil, false
	}
	logger.Infof("generated %d cards for bin %s", len(cards), card.CleanDigits(req.Bin))
	return cards, true
}
