// Copyright (C) 2026 The Reel Authors.
//
// This file is part of Reel.
//
// Reel is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Reel is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Reel.  If not, see <https://www.gnu.org/licenses/>.

// Package hub pushes catalog change notifications to websocket clients.
// Clients authenticate first with "/auth <token>" and may then send
// "/ping <time>"; everything else they send is ignored.
package hub

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/reelhouse/reel/lib/log"
)

const (
	authTimeout = 10 * time.Second
	pingPeriod  = 45 * time.Second
	sendQueue   = 16
)

type Authenticator interface {
	Authenticate(string) bool
}

type Message struct {
	body []byte
	to   *Client
}

type Hub struct {
	nextId     int64
	clients    map[*Client]bool
	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	count      chan chan int
}

type Conn net.Conn

type Client struct {
	id   int64
	hub  *Hub
	conn Conn
	send chan Message
}

func NewHub() *Hub {
	return &Hub{
		nextId:     1,
		broadcast:  make(chan Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		count:      make(chan chan int),
		clients:    make(map[*Client]bool),
	}
}

func (h *Hub) done(client *Client) {
	delete(h.clients, client)
	close(client.send)
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			client.id = h.nextId
			h.nextId++
			log.Debugf("register %d: clients %d\n", client.id, len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.done(client)
			}
			log.Debugf("unregister %d: clients %d\n", client.id, len(h.clients))
		case message := <-h.broadcast:
			if message.to != nil {
				if _, ok := h.clients[message.to]; ok {
					h.deliver(message.to, message)
				}
				continue
			}
			for client := range h.clients {
				h.deliver(client, message)
			}
		case reply := <-h.count:
			reply <- len(h.clients)
		}
	}
}

func (h *Hub) deliver(client *Client, message Message) {
	select {
	case client.send <- message:
	default:
		// slow reader
		h.done(client)
	}
}

// Broadcast queues body for every registered client.
func (h *Hub) Broadcast(body []byte) {
	h.broadcast <- Message{body: body}
}

// Clients returns the number of registered clients.
func (h *Hub) Clients() int {
	reply := make(chan int)
	h.count <- reply
	return <-reply
}

func (h *Hub) Handle(auth Authenticator, w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		log.Println(err)
		return
	}

	c := &Client{
		id:   0,
		hub:  h,
		conn: conn,
		send: make(chan Message, sendQueue),
	}

	go c.reader(auth)
	go c.writer()
}

func (c *Client) ping() error {
	return wsutil.WriteServerMessage(c.conn, ws.OpPing, []byte{})
}

func (c *Client) reader(auth Authenticator) {
	registered := false
	defer func() {
		if registered {
			c.hub.unregister <- c
		} else {
			close(c.send)
		}
		c.conn.Close()
	}()

	// auth is required first
	c.conn.SetReadDeadline(time.Now().Add(authTimeout))
	msg, err := wsutil.ReadClientText(c.conn)
	if err != nil {
		// timeout or error
		log.Println(err)
		return
	}
	cmd := strings.Fields(string(msg))
	if len(cmd) != 2 || cmd[0] != "/auth" {
		// only auth is allowed
		log.Warnf("live: expected /auth\n")
		return
	}
	if auth.Authenticate(cmd[1]) == false {
		log.Warnf("live: bad token\n")
		return
	}

	c.hub.register <- c
	registered = true

	for {
		c.conn.SetReadDeadline(time.Now().Add(pingPeriod))
		msg, err := wsutil.ReadClientText(c.conn)
		if err != nil && errors.Is(err, os.ErrDeadlineExceeded) {
			// keep alive with pings
			err = c.ping()
			if err != nil {
				log.Println(err)
				return
			}
			continue
		} else if err != nil {
			log.Debugf("live: %s\n", err)
			return
		}
		if len(msg) == 0 || msg[0] != byte('/') {
			continue
		}
		cmd := strings.Fields(string(msg[1:]))
		if len(cmd) == 0 {
			continue
		}
		switch cmd[0] {
		case "ping":
			if len(cmd) == 2 {
				// "/ping time"
				pong := fmt.Sprintf("/pong %s", cmd[1])
				c.hub.reply(c, []byte(pong))
			}
		default:
			log.Debugf("ignore '%s'\n", cmd[0])
		}
	}
}

// reply sends body to one client through the hub so it never races with
// done closing the send channel.
func (h *Hub) reply(c *Client, body []byte) {
	h.broadcast <- Message{body: body, to: c}
}

func (c *Client) writer() {
	defer func() {
		c.conn.Close()
	}()

	for message := range c.send {
		err := wsutil.WriteServerText(c.conn, message.body)
		if err != nil {
			log.Println(err)
			return
		}
	}
}
