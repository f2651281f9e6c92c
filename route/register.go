package route

import (
	"net/http"
	"time"

	"git.thinkinpower.net/bingen/bdata"
	"git.thinkinpower.net/bingen/card"
	"git.thinkinpower.net/bingen/data"
	"github.com/gin-gonic/gin"
)

type Options struct {
	//未指定数量时的默认值
	DefaultQuantity int
	NewGenerator    func() *card.Generator
	Now             func() time.Time
}

type server struct {
	db              bdata.BinDatabase
	defaultQuantity int
	newGenerator    func() *card.Generator
	now             func() time.Time
}

func Register(r *gin.Engine, db bdata.BinDatabase, opts Options) {
	s := &server{
		db:              db,
		defaultQuantity: opts.DefaultQuantity,
		newGenerator:    opts.NewGenerator,
		now:             opts.Now,
	}
	if s.defaultQuantity <= 0 {
		s.defaultQuantity = data.DefaultQuantity
	}
	if s.newGenerator == nil {
		s.newGenerator = card.NewRandomGenerator
	}
	if s.now == nil {
		s.now = time.Now
	}

	g := r.Group("/bingen")
	{
		g.GET("/index", func(context *gin.Context) {
			context.String(http.StatusOK, "Hello bingen, date: %s", s.now().Format(data.DateTimePattern))
		})

		g.POST("/cards", s.generate)
		g.POST("/cards/export", s.export)
		g.GET("/cards/classify/:number", s.classify)
		g.GET("/cards/validate/:number", s.validate)

		g.GET("/bins", s.listBins)
		g.GET("/bins/:id", s.getBin)
		g.POST("/bins/:id/cards", s.generateFromBin)
	}
}
