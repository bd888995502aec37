package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/melusiness/tamstar/internal/calendar"
	"github.com/melusiness/tamstar/internal/ics"
	"github.com/melusiness/tamstar/internal/track"
)

const dateLayout = "2006-01-02"

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "ok",
		"records": len(s.store.Records()),
	})
}

// Record handlers

func (s *Server) handleListRecords(c *gin.Context) {
	records := track.SortedByTime(s.store.Records())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"records": records,
		"count":   len(records),
	})
}

func (s *Server) handleRecordsForDay(c *gin.Context) {
	day, err := time.ParseInLocation(dateLayout, c.Param("date"), s.store.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid date, want YYYY-MM-DD",
		})
		return
	}

	records := track.SortedByTime(s.store.RecordsForDay(day))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    c.Param("date"),
		"records": records,
		"count":   len(records),
	})
}

func (s *Server) handleCreateRecord(c *gin.Context) {
	var req struct {
		Timestamp string `json:"timestamp"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
	}

	at := time.Now()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid timestamp, want RFC 3339",
			})
			return
		}
		at = parsed
	}

	r := s.store.Add(at)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      r.ID,
		"message": "Record logged",
	})
}

func (s *Server) handleUpdateRecord(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Timestamp string `json:"timestamp"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	at, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid timestamp, want RFC 3339",
		})
		return
	}

	if _, found := s.store.Update(id, at); !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "record not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"message": "Record updated",
	})
}

func (s *Server) handleDeleteRecord(c *gin.Context) {
	found := s.store.Delete(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": found,
	})
}

// Settings handlers

func (s *Server) handleGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"settings": s.store.Settings(),
	})
}

func (s *Server) handleUpdateSettings(c *gin.Context) {
	var req struct {
		SuggestedIntervalHours float64 `json:"suggested_interval_hours"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if !s.store.SetSuggestedInterval(req.SuggestedIntervalHours) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "suggested_interval_hours must be positive",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"settings": s.store.Settings(),
		"message":  "Settings updated",
	})
}

// Derived-view handlers

func (s *Server) handleDayReport(c *gin.Context) {
	day, err := time.ParseInLocation(dateLayout, c.Param("date"), s.store.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid date, want YYYY-MM-DD",
		})
		return
	}

	report := s.store.DayReport(day, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    c.Param("date"),
		"report":  report,
	})
}

func (s *Server) handleCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid year",
		})
		return
	}

	monthNum, err := strconv.Atoi(c.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid month, want 1-12",
		})
		return
	}

	weekStart := calendar.ParseWeekStart(c.DefaultQuery("weekstart", s.cfg.WeekStart))

	m := calendar.Month{Year: year, Month: time.Month(monthNum)}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"year":      m.Year,
		"month":     int(m.Month),
		"label":     m.String(),
		"day_names": calendar.DayNames(weekStart),
		"weeks":     calendar.BuildGrid(m, weekStart),
		"marks":     s.store.MarksForMonth(m),
	})
}

func (s *Server) handleExport(c *gin.Context) {
	data := ics.Export(s.store.Records(), time.Now())

	c.Header("Content-Disposition", `attachment; filename="tamstar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(data))
}
