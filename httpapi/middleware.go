package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime"
	"net/http"
	"time"
)

type handlerResponse struct {
	Code int
	Body interface{}
	Err  error
}

type returnHandler func(http.ResponseWriter, *http.Request) *handlerResponse

const logTemplate = "{{.Date}} {{.Method}} {{.Path}}{{if .Query}}?{{.Query}}{{end}} {{.Code}} ({{.Status}}){{if .Err}}, Error: {{.Err}}{{end}}\n"

type logData struct {
	Date   string
	Status string
	Code   int
	Method string
	Path   string
	Query  string
	Err    error
}

func logMiddleware(next returnHandler, writer io.Writer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := next(w, r)

		err := template.Must(template.New("log").Parse(logTemplate)).Execute(writer, &logData{
			Date:   time.Now().Format("2006-01-02:15:04:05 -0700"),
			Status: http.StatusText(resp.Code),
			Code:   resp.Code,
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Err:    resp.Err,
		})

		if err != nil {
			panic(err)
		}
	})
}

func jsonMiddleware(next returnHandler) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		var resp *handlerResponse

		if r.Method != "GET" {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil {
				resp = handleError(http.StatusBadRequest, errors.New("Could not parse Content-Type"))
				goto serve
			}
			if mediaType != "application/json" {
				resp = handleError(http.StatusBadRequest, errors.New("Content-Type not application/json"))
				goto serve
			}
		}

		w.Header().Set("Content-Type", "application/json")
		resp = next(w, r)

	serve:
		w.WriteHeader(resp.Code)
		e := json.NewEncoder(w)
		err := e.Encode(resp.Body)
		if err != nil {
			return handleError(http.StatusInternalServerError, fmt.Errorf("Could encode json: %v", err))
		}
		return resp
	}
}

func authMiddleware(next returnHandler, s SessionStore) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		key := r.Header.Get("X-Session-Key")
		if key == "" {
			return handleError(http.StatusUnauthorized, errors.New("X-Session-Key header empty"))
		}

		sess, err := s.Check(key)
		if err != nil {
			return handleError(http.StatusInternalServerError, fmt.Errorf("Could not check session key: %v", err))
		}
		if sess == nil {
			return handleError(http.StatusUnauthorized, errors.New("Could not find session"))
		}

		return next(w, r)
	}
}

//wsAuthMiddleware authenticates WebSocket upgrade requests. Browsers can't
//set headers on WebSocket connections, so the session key is also accepted
//as a query parameter.
func wsAuthMiddleware(next http.Handler, s SessionStore, writer io.Writer) http.Handler {
	check := func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		key := r.Header.Get("X-Session-Key")
		if key == "" {
			key = r.URL.Query().Get("session_key")
		}
		if key == "" {
			return handleError(http.StatusUnauthorized, errors.New("session key empty"))
		}

		sess, err := s.Check(key)
		if err != nil {
			return handleError(http.StatusInternalServerError, fmt.Errorf("Could not check session key: %v", err))
		}
		if sess == nil {
			return handleError(http.StatusUnauthorized, errors.New("Could not find session"))
		}

		next.ServeHTTP(w, r)
		return &handlerResponse{Code: http.StatusSwitchingProtocols}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := check(w, r)

		if resp.Code != http.StatusSwitchingProtocols {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(resp.Code)
			json.NewEncoder(w).Encode(resp.Body)
		}

		err := template.Must(template.New("log").Parse(logTemplate)).Execute(writer, &logData{
			Date:   time.Now().Format("2006-01-02:15:04:05 -0700"),
			Status: http.StatusText(resp.Code),
			Code:   resp.Code,
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Err:    resp.Err,
		})
		if err != nil {
			panic(err)
		}
	})
}
