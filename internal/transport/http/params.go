package httptransport

import (
	"net/url"
	"time"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/errors"
	"activity-sampler/internal/services"
)

// queryParams parses query string values, keeping the first failure.
type queryParams struct {
	values url.Values
	err    error
}

func (p *queryParams) fail(field, value, reason string) {
	if p.err == nil {
		p.err = errors.NewInvalidInputError(field, value, reason)
	}
}

func (p *queryParams) date(key string) domain.Date {
	raw := p.values.Get(key)
	if raw == "" {
		return domain.Date{}
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		p.fail(key, raw, "expected YYYY-MM-DD")
	}
	return d
}

func (p *queryParams) zone() *time.Location {
	raw := p.values.Get("timeZone")
	if raw == "" {
		return nil
	}
	loc, err := time.LoadLocation(raw)
	if err != nil {
		p.fail("timeZone", raw, "unknown time zone")
		return nil
	}
	return loc
}

// categories returns every category parameter. A present but empty value
// selects activities without category.
func (p *queryParams) categories() []string {
	return p.values["category"]
}

func (p *queryParams) reportScope() services.ReportScope {
	raw := p.values.Get("scope")
	if raw == "" {
		return services.ReportScopeClients
	}
	scope, err := services.ParseReportScope(raw)
	if err != nil {
		p.fail("scope", raw, err.Error())
	}
	return scope
}

func (p *queryParams) statisticsScope() services.StatisticsScope {
	raw := p.values.Get("scope")
	if raw == "" {
		return services.StatisticsScopeWorkingHours
	}
	scope, err := services.ParseStatisticsScope(raw)
	if err != nil {
		p.fail("scope", raw, err.Error())
	}
	return scope
}
