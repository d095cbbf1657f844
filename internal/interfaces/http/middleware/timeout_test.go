package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout_SlowHandlerGets408(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Timeout(50 * time.Millisecond))

	handlerDone := make(chan struct{})
	r.GET("/slow", func(c *gin.Context) {
		defer close(handlerDone)
		time.Sleep(200 * time.Millisecond)
		// this write races the deadline response and must be dropped
		c.JSON(http.StatusOK, gin.H{"message": "too late"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestTimeout, w.Code)
	assert.JSONEq(t, `{"error": "Request timeout"}`, w.Body.String())

	// let the handler goroutine finish its late write, then make sure
	// nothing leaked into the response
	<-handlerDone
	time.Sleep(10 * time.Millisecond)
	assert.JSONEq(t, `{"error": "Request timeout"}`, w.Body.String())
}

func TestTimeout_FastHandlerPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Timeout(time.Second))
	r.GET("/fast", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fast", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "ok"}`, w.Body.String())
}
