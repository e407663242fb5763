// Package content serves the portfolio data shown on the public site:
// profile, experience, education, skills, projects and achievements.
// Reads are public; writes require an authenticated admin.
package content

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/gofolio/internal/content/inbound"
	"github.com/shandysiswandi/gofolio/internal/content/outbound/db"
	"github.com/shandysiswandi/gofolio/internal/content/usecase"
	"github.com/shandysiswandi/gofolio/internal/pkg/clock"
	"github.com/shandysiswandi/gofolio/internal/pkg/config"
	"github.com/shandysiswandi/gofolio/internal/pkg/instrument"
	"github.com/shandysiswandi/gofolio/internal/pkg/router"
	"github.com/shandysiswandi/gofolio/internal/pkg/storage"
	"github.com/shandysiswandi/gofolio/internal/pkg/uid"
	"github.com/shandysiswandi/gofolio/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Storage    storage.Storage            `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbContent := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbContent,
		Storage:    dep.Storage,
		Validator:  dep.Validator,
		Config:     dep.Config,
		UID:        dep.UID,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
