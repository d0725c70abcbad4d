package delivery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Blackdeer1524/joaat/src"
	"github.com/Blackdeer1524/joaat/src/joaat"
	"github.com/Blackdeer1524/joaat/src/pkg/utils"
)

type APIHandler struct {
	Finder    Finder
	MaxLength int
	Logger    src.Logger

	inflight singleflight.Group
}

func NewAPIHandler(finder Finder, maxLength int, log src.Logger) *APIHandler {
	return &APIHandler{
		Finder:    finder,
		MaxLength: maxLength,
		Logger:    log,
	}
}

func (h *APIHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/hash", h.Hash).Methods(http.MethodGet)
	router.HandleFunc("/preimages", h.Preimages).Methods(http.MethodGet)
	router.HandleFunc("/check", h.Check).Methods(http.MethodGet)
	router.HandleFunc("/alphabets", h.Alphabets).Methods(http.MethodGet)
}

type hashResponse struct {
	Input string `json:"input"`
	Hash  string `json:"hash"`
	Value uint32 `json:"value"`
}

type preimagesResponse struct {
	Target    string   `json:"target"`
	Length    int      `json:"length"`
	Alphabet  string   `json:"alphabet"`
	Preimages []string `json:"preimages"`
}

type checkResponse struct {
	Candidate  string `json:"candidate"`
	Target     string `json:"target"`
	Preimage   bool   `json:"preimage"`
	InAlphabet *bool  `json:"in_alphabet,omitempty"`
}

func (h *APIHandler) Hash(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")
	value := joaat.SumString(input)

	h.writeJSON(w, http.StatusOK, hashResponse{
		Input: input,
		Hash:  utils.FormatHex(value),
		Value: value,
	})
}

func (h *APIHandler) Preimages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	target, err := utils.ParseUint32(q.Get("target"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	length, err := strconv.Atoi(q.Get("length"))
	if err != nil {
		http.Error(w, "length must be an integer", http.StatusBadRequest)

		return
	}

	if length > h.MaxLength {
		http.Error(w, fmt.Sprintf("length must not exceed %d", h.MaxLength), http.StatusBadRequest)

		return
	}

	alphabet := h.Finder.Alphabet()
	custom := q.Get("alphabet") != ""
	if custom {
		alphabet, err = joaat.ResolveAlphabet(q.Get("alphabet"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}
	}

	if err := joaat.Validate(length, alphabet); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	key := fmt.Sprintf("%08x/%d/%s", target, length, alphabet)
	v, _, shared := h.inflight.Do(key, func() (any, error) {
		if custom {
			return h.Finder.FindWith(target, length, alphabet), nil
		}

		return h.Finder.FindPreimages(target, length), nil
	})
	if shared {
		h.Logger.Debugw("preimage search shared", "key", key)
	}

	preimages, _ := v.([]string)
	if preimages == nil {
		preimages = []string{}
	}

	h.writeJSON(w, http.StatusOK, preimagesResponse{
		Target:    utils.FormatHex(target),
		Length:    length,
		Alphabet:  alphabet.String(),
		Preimages: preimages,
	})
}

func (h *APIHandler) Check(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	target, err := utils.ParseUint32(q.Get("target"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	candidate := q.Get("candidate")
	resp := checkResponse{
		Candidate: candidate,
		Target:    utils.FormatHex(target),
		Preimage:  joaat.IsPreimage(candidate, target),
	}

	if raw := q.Get("alphabet"); raw != "" {
		alphabet, err := joaat.ResolveAlphabet(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		inAlphabet := alphabet.Contains(candidate)
		resp.InAlphabet = &inAlphabet
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) Alphabets(w http.ResponseWriter, _ *http.Request) {
	out := make(map[string]string)
	for _, name := range joaat.PresetNames() {
		a, _ := joaat.LookupPreset(name)
		out[name] = a.String()
	}

	h.writeJSON(w, http.StatusOK, out)
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Errorw("failed to encode response", zap.Error(err))
	}
}
