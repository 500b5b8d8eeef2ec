package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cricklet/chessmoves/internal/board"
	. "github.com/cricklet/chessmoves/internal/helpers"
	"github.com/cricklet/chessmoves/internal/render"
	"github.com/cricklet/chessmoves/internal/snapshot"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type MovesRequest struct {
	Fen      *string             `json:"fen"`
	Snapshot *snapshot.GameState `json:"snapshot"`
	Square   string              `json:"square"`
	Lenient  bool                `json:"lenient"`
}

type MoveJson struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Piece string `json:"piece"`
	Type  string `json:"type"`
}

type MovesResponse struct {
	Fen    string     `json:"fen"`
	Player string     `json:"player"`
	Moves  []MoveJson `json:"moves"`
	Issues []string   `json:"issues"`
}

type UpdateToWeb struct {
	FenString     string   `json:"fenString"`
	Selection     string   `json:"selection"`
	PossibleMoves []string `json:"possibleMoves"`
	Player        string   `json:"player"`
	Board         string   `json:"board"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.FenString, ", ", u.Selection, ", ", u.PossibleMoves)
}

type MessageFromWeb struct {
	NewFen    *string `json:"newFen"`
	Selection *string `json:"selection"`
	Lenient   *bool   `json:"lenient"`
}

func (u MessageFromWeb) String() string {
	if u.NewFen != nil {
		return fmt.Sprint("MessageFromWeb NewFen: ", *u.NewFen)
	}
	if u.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *u.Selection)
	}
	if u.Lenient != nil {
		return fmt.Sprint("MessageFromWeb Lenient: ", *u.Lenient)
	}
	return "MessageFromWeb unknown"
}

type Server struct {
	Logger   Logger
	upgrader websocket.Upgrader
}

func NewServer(logger Logger) *Server {
	return &Server{Logger: logger}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/moves", s.moves).Methods(http.MethodPost)
	router.HandleFunc("/board.svg", s.boardSvg).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.ws)
	return router
}

func (s *Server) buildOptions(lenient bool) []board.BuildOption {
	strictness := board.Strict
	if lenient {
		strictness = board.Lenient
	}
	return []board.BuildOption{board.WithStrictness(strictness), board.WithLogger(s.Logger)}
}

func (s *Server) buildBoard(request MovesRequest) (*board.Board, Error) {
	if request.Snapshot != nil {
		return board.Build(request.Snapshot, s.buildOptions(request.Lenient)...)
	}
	fen := snapshot.StartingFen
	if request.Fen != nil {
		fen = *request.Fen
	}
	return board.BuildFromFen(fen, s.buildOptions(request.Lenient)...)
}

func playerString(c board.Color) string {
	if c == board.White {
		return "white"
	}
	return "black"
}

func movesJson(moves []board.Move) []MoveJson {
	return MapSlice(moves, func(m board.Move) MoveJson {
		return MoveJson{
			From:  m.From.String(),
			To:    m.To.String(),
			Piece: board.DisplayName(m.Piece),
			Type:  m.MoveType.String(),
		}
	})
}

func (s *Server) writeJson(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if !IsNil(err) {
		s.Logger.Println("json encode: ", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err Error) {
	s.Logger.Println("request failed: ", err)
	s.writeJson(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) moves(w http.ResponseWriter, r *http.Request) {
	var request MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, http.StatusBadRequest, Wrap(err))
		return
	}

	b, err := s.buildBoard(request)
	if !IsNil(err) {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	var moves []board.Move
	if request.Square != "" {
		sq, err := SquareFromAlgebraic(request.Square)
		if !IsNil(err) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		moves = b.MovesFrom(sq)
	} else {
		moves = b.Moves(b.CurrentPlayer())
	}

	s.writeJson(w, http.StatusOK, MovesResponse{
		Fen:    b.Fen(),
		Player: playerString(b.CurrentPlayer()),
		Moves:  movesJson(moves),
		Issues: MapSlice(b.Issues(), func(i board.Issue) string {
			return i.String()
		}),
	})
}

func (s *Server) boardSvg(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := MovesRequest{Lenient: query.Get("lenient") == "true"}
	if fen := query.Get("fen"); fen != "" {
		request.Fen = &fen
	}

	b, err := s.buildBoard(request)
	if !IsNil(err) {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	options := []render.Option{}
	if selection := query.Get("square"); selection != "" {
		sq, err := SquareFromAlgebraic(selection)
		if !IsNil(err) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		options = append(options, render.WithHighlights(MapSlice(b.MovesFrom(sq), func(m board.Move) board.Square {
			return m.To
		})...))
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	render.Board(w, b, options...)
}

func (s *Server) ws(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if !IsNil(err) {
		s.Logger.Println("upgrade: ", err)
		return
	}
	defer c.Close()

	session := session{fen: snapshot.StartingFen, logger: s.Logger}
	for {
		_, message, err := c.ReadMessage()
		if !IsNil(err) {
			s.Logger.Printf("Error: %v\n", err)
			break
		}

		update, ok := session.handle(message)
		if !ok {
			continue
		}
		bytes, err := json.Marshal(update)
		if !IsNil(err) {
			s.Logger.Println("update: json marshal: ", err)
			continue
		}
		err = c.WriteMessage(websocket.TextMessage, bytes)
		if !IsNil(err) {
			s.Logger.Println("websocket: ", err)
		}
	}
}

// session is the per-connection state of a websocket client.
type session struct {
	fen     string
	lenient bool
	logger  Logger
}

func (s *session) handle(bytes []byte) (UpdateToWeb, bool) {
	var message MessageFromWeb
	if err := json.Unmarshal(bytes, &message); err != nil {
		s.logger.Println("handleMessageFromWeb: json unmarshal: ", err)
		return UpdateToWeb{}, false
	}
	s.logger.Println("received", message)

	update := UpdateToWeb{PossibleMoves: []string{}}
	if message.NewFen != nil {
		s.fen = *message.NewFen
	} else if message.Lenient != nil {
		s.lenient = *message.Lenient
	} else if message.Selection == nil {
		return UpdateToWeb{}, false
	}

	options := []board.BuildOption{board.WithLogger(s.logger)}
	if s.lenient {
		options = append(options, board.WithStrictness(board.Lenient))
	}
	b, err := board.BuildFromFen(s.fen, options...)
	if !IsNil(err) {
		s.logger.Println("setup: ", err)
		update.FenString = s.fen
		return update, true
	}

	if message.Selection != nil && *message.Selection != "" {
		update.Selection = *message.Selection
		sq, err := SquareFromAlgebraic(*message.Selection)
		if IsNil(err) {
			update.PossibleMoves = MapSlice(b.MovesFrom(sq), func(m board.Move) string {
				return m.String()
			})
		} else {
			s.logger.Println("moves for: ", *message.Selection, err)
		}
	}

	update.FenString = b.Fen()
	update.Player = playerString(b.CurrentPlayer())
	update.Board = StripAnsi(b.Unicode())
	s.logger.Println("sending", update)
	return update, true
}
