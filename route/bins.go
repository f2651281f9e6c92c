package route

import (
	"net/http"
	"strconv"

	"git.thinkinpower.net/bingen/bdata"
	"git.thinkinpower.net/bingen/mod"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

func (s *server) listBins(ctx *gin.Context) {
	records := s.db.Filter(bdata.BinFilter{Type: ctx.Query("type"), Query: ctx.Query("q")})
	ctx.JSON(http.StatusOK, mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "success"},
		Data:          records,
	})
}

func (s *server) getBin(ctx *gin.Context) {
	record, ok := s.readBin(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "success"},
		Data:          record,
	})
}

//使用数据集中的BIN生成卡号
func (s *server) generateFromBin(ctx *gin.Context) {
	record, ok := s.readBin(ctx)
	if !ok {
		return
	}
	quantity := s.defaultQuantity
	if q := ctx.Query("quantity"); q != "" {
		var err error
		if quantity, err = strconv.Atoi(q); err != nil {
			ctx.JSON(http.StatusBadRequest, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "quantity must be a number"})
			return
		}
	}
	cards, ok := s.generateCards(ctx, mod.GenerationRequest{Bin: record.Bin, Quantity: quantity})
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "success"},
		Data:          mod.CardBatch{Count: len(cards), Cards: cards},
	})
}

func (s *server) readBin(ctx *gin.Context) (mod.BinRecord, bool) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, mod.ResponseValue{Code: mod.ResponseCodeMissingParams, Msg: "missing id"})
		return mod.BinRecord{}, false
	}
	record, err := s.db.ReadById(id)
	if err != nil {
		if errors.Cause(err) == bdata.ErrNotFound {
			ctx.JSON(http.StatusNotFound, mod.ResponseValue{Code: mod.ResponseCodeNotFound, Msg: err.Error()})
			return mod.BinRecord{}, false
		}
		logger.Errorf("read bin %s: %s", id, err)
		ctx.JSON(http.StatusInternalServerError, mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: "failed"})
		return mod.BinRecord{}, false
	}
	return record, true
}
