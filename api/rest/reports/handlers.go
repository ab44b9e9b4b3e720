package reports

import (
	"io"
	"net/http"
	"strconv"

	"codeberg.org/hitlog/analyzer/internal/attribution"
	"codeberg.org/hitlog/analyzer/internal/errors"
	"codeberg.org/hitlog/analyzer/internal/hitlog"
	"codeberg.org/hitlog/analyzer/internal/influence"
	"codeberg.org/hitlog/analyzer/internal/journey"
	"codeberg.org/hitlog/analyzer/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListPoliciesHandler lists the supported attribution policies
func ListPoliciesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		policies := make([]PolicyInfo, 0, len(attribution.Policies()))

		for _, p := range attribution.Policies() {
			policies = append(policies, PolicyInfo{
				Name:        p.String(),
				Description: p.Describe(),
				Normalized:  p.Normalized(),
			})
		}

		c.JSON(http.StatusOK, gin.H{"policies": policies})
	}
}

// AnalyzeHandler runs a one-shot attribution analysis over an uploaded hitlog.
// The hitlog arrives as the raw request body or as multipart file field
// "hitlog"; query params select the policy, the top-N cutoff and the response
// format (json or csv).
func AnalyzeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		policy, err := attribution.ParsePolicy(c.DefaultQuery("policy", attribution.PolicyCount.String()))
		if err != nil {
			errors.UnknownPolicy(c, c.Query("policy"))
			return
		}

		top, err := strconv.Atoi(c.DefaultQuery("top", "3"))
		if err != nil || top < 1 {
			errors.BadRequest(c, "top must be a positive integer", nil)
			return
		}

		src, cleanup, err := hitlogSource(c)
		if err != nil {
			errors.BadRequest(c, "missing hitlog upload", err)
			return
		}

		defer cleanup()

		events, err := hitlog.Read(src)
		if err != nil {
			if hitlog.IsMalformed(err) {
				errors.MalformedInput(c, err)
				return
			}

			errors.InternalError(c, "failed to read hitlog", err)

			return
		}

		journeys := journey.Extract(events)
		rows := influence.Rank(influence.Aggregate(journeys, policy), top)

		analysisID := uuid.NewString()

		logger.Info("analysis complete",
			"analysis_id", analysisID,
			"policy", policy.String(),
			"events", len(events),
			"journeys", len(journeys),
			"rows", len(rows),
		)

		if c.Query("format") == "csv" {
			c.Header("Content-Type", "text/csv")
			c.Header("Content-Disposition", `attachment; filename="influential_articles.csv"`)

			if err := influence.WriteCSV(c.Writer, rows); err != nil {
				logger.ErrorErr(err, "failed to stream result csv", "analysis_id", analysisID)
			}

			return
		}

		c.JSON(http.StatusOK, AnalysisResponse{
			AnalysisID: analysisID,
			Policy:     policy.String(),
			Journeys:   len(journeys),
			Rows:       rows,
		})
	}
}

// picks the hitlog source: multipart field first, raw body otherwise
func hitlogSource(c *gin.Context) (io.Reader, func(), error) {
	if file, err := c.FormFile("hitlog"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, nil, err
		}

		return f, func() { _ = f.Close() }, nil
	}

	return c.Request.Body, func() {}, nil
}
