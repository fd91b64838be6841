package main

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"time"

	"github.com/vanshgarg20/CEG/mailgen"
	allPrompts "github.com/vanshgarg20/CEG/prompts"
	"github.com/vanshgarg20/CEG/tools"
	"github.com/vanshgarg20/CEG/utils"
)

var careersURLRe = regexp.MustCompile(`(?i)^https?://`)

type app struct {
	completer     *mailgen.Completer
	persona       mailgen.Persona
	extractTool   tools.ExtractJobsTool
	emailTool     tools.DraftEmailTool
	portfolioTool *tools.PortfolioSearchTool
	indexTmpl     *template.Template
	resultTmpl    *template.Template
}

func newApp(
	completer *mailgen.Completer,
	persona mailgen.Persona,
	extractTool tools.ExtractJobsTool,
	emailTool tools.DraftEmailTool,
	portfolioTool *tools.PortfolioSearchTool,
	templatesDir string,
) *app {
	return &app{
		completer:     completer,
		persona:       persona,
		extractTool:   extractTool,
		emailTool:     emailTool,
		portfolioTool: portfolioTool,
		indexTmpl:     template.Must(template.ParseFiles(templatesDir + "/index.html")),
		resultTmpl:    template.Must(template.ParseFiles(templatesDir + "/result.html")),
	}
}

func (a *app) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", a.handleIndex)
	mux.HandleFunc("/generate", a.handleGenerate)
	mux.HandleFunc("/health", a.handleHealth)
	return loggingMiddleware(corsMiddleware(mux))
}

// handleIndex serves the email form on GET and processes its submission on
// POST, rendering the generated email on the result page.
func (a *app) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		a.renderForm(w, http.StatusOK, FormPageData{Intents: allPrompts.Intents()})
	case http.MethodPost:
		a.handleFormSubmit(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *app) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.renderForm(w, http.StatusBadRequest, FormPageData{
			Error:   "Could not read the submitted form.",
			Intents: allPrompts.Intents(),
		})
		return
	}

	req := mailgen.EmailRequest{
		RecipientName:    r.FormValue("recipient_name"),
		RecipientRole:    r.FormValue("recipient_role"),
		RecipientCompany: r.FormValue("recipient_company"),
		Intent:           r.FormValue("intent"),
		Tone:             r.FormValue("tone"),
		CTA:              r.FormValue("cta"),
	}

	email, err := a.completer.GenerateEmail(r.Context(), a.persona, req)
	if err != nil {
		data := FormPageData{
			RecipientName:    req.RecipientName,
			RecipientRole:    req.RecipientRole,
			RecipientCompany: req.RecipientCompany,
			Intent:           req.Intent,
			Tone:             req.Tone,
			CTA:              req.CTA,
			Intents:          allPrompts.Intents(),
		}
		status := statusFor(err)
		if status == http.StatusBadRequest {
			data.Error = err.Error()
		} else {
			log.Printf("generation failed: %v", err)
			data.Error = "Could not generate the email right now. Please try again."
		}
		a.renderForm(w, status, data)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := a.resultTmpl.Execute(w, ResultPageData{
		RecipientName:    req.RecipientName,
		RecipientCompany: req.RecipientCompany,
		Email:            email,
		DownloadName:     utils.DownloadName("email"),
	}); err != nil {
		log.Printf("failed to render result page: %v", err)
	}
}

func (a *app) renderForm(w http.ResponseWriter, status int, data FormPageData) {
	w.WriteHeader(status)
	if err := a.indexTmpl.Execute(w, data); err != nil {
		log.Printf("failed to render form page: %v", err)
	}
}

// handleGenerate is the JSON API. A request with a "url" field runs the
// careers page pipeline (one email per extracted posting); otherwise the
// recipient fields produce a single email.
func (a *app) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		mailgen.EmailRequest
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if strings.TrimSpace(req.URL) != "" {
		a.generateFromCareersPage(w, r, req.URL, req.Tone, req.CTA)
		return
	}

	email, err := a.completer.GenerateEmail(r.Context(), a.persona, req.EmailRequest)
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"email":         email,
		"download_name": utils.DownloadName("email"),
	})
}

func (a *app) generateFromCareersPage(w http.ResponseWriter, r *http.Request, url, tone, cta string) {
	if !careersURLRe.MatchString(url) {
		writeJSONError(w, http.StatusBadRequest, "provide a valid http(s) URL in 'url'")
		return
	}

	pageText, err := utils.FetchAndClean(r.Context(), url)
	if err != nil {
		writeJSONError(w, http.StatusBadGateway, "failed to fetch careers page: "+err.Error())
		return
	}

	resp, err := runCareers(r.Context(), url, pageText, tone, cta, a.extractTool, a.portfolioTool, a.emailTool)
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (a *app) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// statusFor maps the two domain error kinds to HTTP statuses: bad input is
// the user's to fix, upstream failures are the model provider's.
func statusFor(err error) int {
	var vErr *mailgen.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}
	var uErr *mailgen.UpstreamError
	if errors.As(err, &uErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func startAPI(ctx context.Context, a *app) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: a.routes(),
	}

	go func() {
		log.Printf("API server running at http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
