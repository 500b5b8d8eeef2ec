package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/cricklet/chessmoves/internal/helpers"
	"github.com/cricklet/chessmoves/internal/snapshot"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func postMoves(t *testing.T, server *httptest.Server, body string) (int, MovesResponse) {
	response, err := http.Post(server.URL+"/moves", "application/json", strings.NewReader(body))
	assert.Nil(t, err)
	defer response.Body.Close()

	result := MovesResponse{}
	if response.StatusCode == http.StatusOK {
		assert.Nil(t, json.NewDecoder(response.Body).Decode(&result))
	}
	return response.StatusCode, result
}

func TestMovesFromFen(t *testing.T) {
	server := httptest.NewServer(NewServer(&SilentLogger).Router())
	defer server.Close()

	status, result := postMoves(t, server, `{}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 20, len(result.Moves))
	assert.Equal(t, "white", result.Player)
	assert.Equal(t, snapshot.StartingFen, result.Fen)

	status, result = postMoves(t, server, `{"fen": "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", "square": "e2"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []MoveJson{
		{From: "e2", To: "e3", Piece: "White Pawn", Type: "QuietMove"},
		{From: "e2", To: "e4", Piece: "White Pawn", Type: "DoublePawnPush"},
	}, result.Moves)

	status, _ = postMoves(t, server, `{"fen": "garbage"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = postMoves(t, server, `{"square": "z9"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMovesFromSnapshot(t *testing.T) {
	server := httptest.NewServer(NewServer(&SilentLogger).Router())
	defer server.Close()

	g := snapshot.GameState{
		Board: &snapshot.BoardState{Pieces: []snapshot.Piece{
			{Knight: &snapshot.KnightState{Color: 1, Position: &snapshot.Position{File: 5, Rank: 5}}},
			{Knight: &snapshot.KnightState{Color: 0, Position: &snapshot.Position{File: 1, Rank: 1}}},
		}},
		CurrentPlayer: 1,
	}
	body, err := json.Marshal(map[string]any{"snapshot": g})
	assert.Nil(t, err)

	status, _ := postMoves(t, server, string(body))
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	body, err = json.Marshal(map[string]any{"snapshot": g, "lenient": true})
	assert.Nil(t, err)

	status, result := postMoves(t, server, string(body))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 8, len(result.Moves))
	assert.Equal(t, 1, len(result.Issues))
	assert.True(t, strings.HasPrefix(result.Issues[0], "piece 1: "))
}

func TestBoardSvg(t *testing.T) {
	server := httptest.NewServer(NewServer(&SilentLogger).Router())
	defer server.Close()

	response, err := http.Get(server.URL + "/board.svg?square=g1")
	assert.Nil(t, err)
	defer response.Body.Close()

	buffer := bytes.Buffer{}
	_, err = buffer.ReadFrom(response.Body)
	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "image/svg+xml", response.Header.Get("Content-Type"))
	assert.Contains(t, buffer.String(), "</svg>")
}

func TestWebsocket(t *testing.T) {
	server := httptest.NewServer(NewServer(&SilentLogger).Router())
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.Nil(t, err)
	defer c.Close()

	send := func(message string) UpdateToWeb {
		assert.Nil(t, c.WriteMessage(websocket.TextMessage, []byte(message)))
		_, data, err := c.ReadMessage()
		assert.Nil(t, err)
		update := UpdateToWeb{}
		assert.Nil(t, json.Unmarshal(data, &update))
		return update
	}

	update := send(`{"newFen": "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"}`)
	assert.Equal(t, "black", update.Player)
	assert.Equal(t, 9, len(strings.Split(strings.TrimSuffix(update.Board, "\n"), "\n")))

	update = send(`{"selection": "g8"}`)
	assert.Equal(t, "g8", update.Selection)
	assert.ElementsMatch(t, []string{"g8f6", "g8h6"}, update.PossibleMoves)
}

func TestSessionIgnoresUnknownMessages(t *testing.T) {
	s := session{fen: snapshot.StartingFen, logger: &SilentLogger}
	_, ok := s.handle([]byte(`{}`))
	assert.False(t, ok)
	_, ok = s.handle([]byte(`not json`))
	assert.False(t, ok)

	update, ok := s.handle([]byte(`{"newFen": "bad"}`))
	assert.True(t, ok)
	assert.Equal(t, "bad", update.FenString)
	assert.Equal(t, 0, len(update.PossibleMoves))
}
