package router_test

import (
	"bytes"
	"encoding/json"
	"exercisetracker/internal/core"
	"exercisetracker/internal/http/handler"
	"exercisetracker/internal/http/payload"
	"exercisetracker/internal/http/router"
	"exercisetracker/internal/memory"
	"exercisetracker/internal/metrics"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Router", func() {
	var (
		srv *httptest.Server
		m   *metrics.Metrics
	)

	do := func(method, path, contentType, body string) (int, string) {
		req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		Expect(err).NotTo(HaveOccurred())
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := srv.Client().Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		return resp.StatusCode, string(data)
	}

	register := func(username string) core.User {
		code, body := do(http.MethodPost, "/api/users", "application/json", `{"username":"`+username+`"}`)
		Expect(code).To(Equal(http.StatusOK))

		var user core.User
		Expect(json.Unmarshal([]byte(body), &user)).To(Succeed())
		return user
	}

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		now := func() time.Time { return time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC) }
		tracker := core.NewTracker(logger, memory.NewStore(), now, time.Second)
		m = metrics.New()
		th := handler.NewTrackerHandler(logger, payload.Decoder{}, tracker, m)

		srv = httptest.NewServer(router.New(logger, th, router.Options{
			AllowedOrigins: []string{"*"},
			Observer:       m,
			MetricsHandler: m.Handler(),
		}))
	})

	AfterEach(func() {
		srv.Close()
	})

	It("should answer the health check", func() {
		code, body := do(http.MethodGet, "/health", "", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(Equal("ok"))
	})

	It("should register and list users", func() {
		alice := register("alice")
		bob := register("bob")

		code, body := do(http.MethodGet, "/api/users", "", "")
		Expect(code).To(Equal(http.StatusOK))

		var users []core.User
		Expect(json.Unmarshal([]byte(body), &users)).To(Succeed())
		Expect(users).To(Equal([]core.User{alice, bob}))
	})

	It("should reject a duplicate username with 409", func() {
		register("alice")
		code, body := do(http.MethodPost, "/api/users", "application/json", `{"username":"alice"}`)
		Expect(code).To(Equal(http.StatusConflict))
		Expect(body).To(ContainSubstring(`"code":"conflict"`))
	})

	It("should accept urlencoded bodies", func() {
		form := url.Values{"username": {"carol"}}
		code, body := do(http.MethodPost, "/api/users", "application/x-www-form-urlencoded", form.Encode())
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"username":"carol"`))
	})

	It("should accept multipart bodies", func() {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		Expect(w.WriteField("username", "dave")).To(Succeed())
		Expect(w.Close()).To(Succeed())

		code, body := do(http.MethodPost, "/api/users", w.FormDataContentType(), buf.String())
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"username":"dave"`))
	})

	It("should default a non-string date to today", func() {
		alice := register("alice")

		code, body := do(http.MethodPost, "/api/users/"+alice.ID+"/exercises", "application/json",
			`{"description":"run","duration":30,"date":1673740800}`)
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"date":"Sat Mar 09 2024"`))
	})

	It("should record an exercise and render it in the log", func() {
		alice := register("alice")

		code, body := do(http.MethodPost, "/api/users/"+alice.ID+"/exercises", "application/json",
			`{"description":"run","duration":"30","date":"2023-01-15"}`)
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"id":"` + alice.ID + `","username":"alice","date":"Sun Jan 15 2023","duration":30,"description":"run"}`))

		code, body = do(http.MethodGet, "/api/users/"+alice.ID+"/logs", "", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"id":"` + alice.ID + `","username":"alice","count":1,"log":[{"description":"run","duration":30,"date":"Sun Jan 15 2023"}]}`))

		code, body = do(http.MethodGet, "/api/users/"+alice.ID+"/logs?from=2023-01-20", "", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"id":"` + alice.ID + `","username":"alice","count":0,"log":[]}`))
	})

	It("should default a missing date to today", func() {
		alice := register("alice")

		form := url.Values{"description": {"swim"}, "duration": {"20"}}
		code, body := do(http.MethodPost, "/api/users/"+alice.ID+"/exercises", "application/x-www-form-urlencoded", form.Encode())
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"date":"Sat Mar 09 2024"`))
	})

	It("should filter before limiting", func() {
		alice := register("alice")
		for _, d := range []string{"2023-01-01", "2023-01-02", "2023-01-03"} {
			code, _ := do(http.MethodPost, "/api/users/"+alice.ID+"/exercises", "application/json",
				`{"description":"`+d+`","duration":10,"date":"`+d+`"}`)
			Expect(code).To(Equal(http.StatusOK))
		}

		code, body := do(http.MethodGet, "/api/users/"+alice.ID+"/logs?from=2023-01-02&limit=1", "", "")
		Expect(code).To(Equal(http.StatusOK))

		var log core.UserLog
		Expect(json.Unmarshal([]byte(body), &log)).To(Succeed())
		Expect(log.Count).To(Equal(1))
		Expect(log.Log[0].Description).To(Equal("2023-01-02"))
	})

	It("should return 404 for an unknown user", func() {
		code, body := do(http.MethodPost, "/api/users/missing/exercises", "application/json", `{"description":"run","duration":30}`)
		Expect(code).To(Equal(http.StatusNotFound))
		Expect(body).To(ContainSubstring(`"code":"not_found"`))

		code, _ = do(http.MethodGet, "/api/users/missing/logs", "", "")
		Expect(code).To(Equal(http.StatusNotFound))
	})

	It("should return 400 for an invalid duration", func() {
		alice := register("alice")
		code, body := do(http.MethodPost, "/api/users/"+alice.ID+"/exercises", "application/json", `{"description":"run","duration":"abc"}`)
		Expect(code).To(Equal(http.StatusBadRequest))
		Expect(body).To(ContainSubstring(`"code":"validation_failed"`))
	})

	It("should expose request metrics by route pattern", func() {
		register("alice")

		code, body := do(http.MethodGet, "/metrics", "", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring("tracker_users_registered_total 1"))
		Expect(body).To(MatchRegexp(`http_requests_total\{method="POST",route="/api/users/?",status="200"\} 1`))
	})

	It("should answer CORS preflight requests", func() {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/users", nil)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Origin", "http://example.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		resp, err := srv.Client().Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.Header.Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})
})
