package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/chordsheet/align"
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/logger"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/song"
	"github.com/jsphweid/chordsheet/store"
	"github.com/jsphweid/chordsheet/transpose"
)

func init() {
	serveCmd.Flags().StringVar(&spellingFlag, "spelling", "", "key, sharps or flats (default from SPELLING)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the transposer over HTTP",
	Long:  `Serves parsing, formatting and transposing over HTTP. Song storage is enabled when SONGS_TABLE is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

type songStore interface {
	Get(ctx context.Context, id string) (model.Song, error)
	Put(ctx context.Context, s model.Song) (model.Song, error)
}

type api struct {
	t     *transpose.Transposer
	songs songStore
}

// NewRouter builds the HTTP API. songs may be nil, in which case the /songs
// routes are not registered.
func NewRouter(t *transpose.Transposer, songs songStore) http.Handler {
	a := &api{t: t, songs: songs}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", a.handleParse).Methods("POST")
	router.HandleFunc("/text", a.handleText).Methods("POST")
	router.HandleFunc("/transpose/song", a.handleTransposeSong).Methods("POST")
	router.HandleFunc("/transpose/line", a.handleTransposeLine).Methods("POST")
	router.HandleFunc("/transpose/chord", a.handleTransposeChord).Methods("POST")
	router.HandleFunc("/key", a.handleKey).Methods("GET")
	if songs != nil {
		router.HandleFunc("/songs", a.handlePutSong).Methods("POST")
		router.HandleFunc("/songs/{id}", a.handleGetSong).Methods("GET")
		router.HandleFunc("/songs/{id}/transpose", a.handleTransposeStored).Methods("POST")
	}
	return cors.New(cors.Options{
		AllowedOrigins: constants.GetCorsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)
}

func decodeBody(r *http.Request, v any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(reqBody, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not encode response", logger.ErrorField(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= 500 {
		logger.Error("request failed", logger.ErrorField(err))
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func (a *api) handleParse(w http.ResponseWriter, r *http.Request) {
	var input model.ParseRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.LinesBody{Lines: align.Parse(input.Text)})
}

func (a *api) handleText(w http.ResponseWriter, r *http.Request) {
	var input model.LinesBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TextBody{Text: align.ToText(input.Lines)})
}

func (a *api) handleTransposeSong(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeSongRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, song.TransposeWith(a.t, input.Song, input.Semitones))
}

func (a *api) handleTransposeLine(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeLineRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransposeResult{Result: a.t.Line(input.Line, input.Semitones, input.Key)})
}

func (a *api) handleTransposeChord(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeChordRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	targetKey := input.TargetKey
	if targetKey == "" && input.OriginalKey != "" {
		targetKey = transpose.TargetKey(input.OriginalKey, input.Semitones)
	}
	res := a.t.Chord(input.Chord, input.Semitones, input.OriginalKey, targetKey)
	writeJSON(w, http.StatusOK, model.TransposeResult{Result: res})
}

// handleKey answers GET /key?key=G&semitones=1, or guesses the key from
// ?chords=G,C,D when no key is given.
func (a *api) handleKey(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	n := 0
	if raw := q.Get("semitones"); raw != "" {
		var err error
		if n, err = strconv.Atoi(raw); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	key := q.Get("key")
	if key == "" {
		key = a.t.DetectKey(strings.Split(q.Get("chords"), ","))
	}
	writeJSON(w, http.StatusOK, model.KeyResult{
		Key:      key,
		Target:   transpose.TargetKey(key, n),
		Interval: transpose.IntervalName(n),
	})
}

func (a *api) handlePutSong(w http.ResponseWriter, r *http.Request) {
	var input model.Song
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	saved, err := a.songs.Put(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (a *api) getSong(w http.ResponseWriter, r *http.Request) (model.Song, bool) {
	s, err := a.songs.Get(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return s, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return s, false
	}
	return s, true
}

func (a *api) handleGetSong(w http.ResponseWriter, r *http.Request) {
	if s, ok := a.getSong(w, r); ok {
		writeJSON(w, http.StatusOK, s)
	}
}

func (a *api) handleTransposeStored(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.URL.Query().Get("semitones"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if s, ok := a.getSong(w, r); ok {
		writeJSON(w, http.StatusOK, song.TransposeWith(a.t, s, n))
	}
}

func serve() error {
	t, err := newTransposer(spellingFlag)
	if err != nil {
		return err
	}

	var songs songStore
	if table := constants.GetSongsTable(); table != "" {
		s, err := store.New(constants.GetDynamoEndpoint(), constants.GetRegion(), table)
		if err != nil {
			return err
		}
		songs = s
	}

	addr := ":" + constants.GetPort()
	logger.Info("serving", logger.String("addr", addr), logger.String("table", constants.GetSongsTable()))
	return http.ListenAndServe(addr, NewRouter(t, songs))
}
