package game

import (
	"fmt"
	"math/rand"
	"time"

	"tabletop-server/internal/domain"
	"tabletop-server/internal/game/handlers"
	"tabletop-server/internal/game/handlers/actions"
	"tabletop-server/internal/network"
	"tabletop-server/internal/session"
	"tabletop-server/pkg/api"
	"tabletop-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Интервал проверки пустых комнат (сам TTL задается конфигом).
const sweepInterval = 30 * time.Second

// GameService - единственный владелец состояния всех комнат.
// Все мутирующие команды проходят через CommandChan и выполняются
// одной горутиной цикла: поиск -> полномочия -> мутация -> рассылка,
// без передачи управления посреди операции. Поэтому внутри комнат
// нет блокировок.
type GameService struct {
	cfg Config

	Store *session.Store
	Hub   *network.Broadcaster

	dice *Roller

	CommandChan    chan domain.InternalCommand
	DisconnectChan chan string

	handlers map[domain.ActionType]handlers.HandlerFunc
}

func NewService(cfg Config) *GameService {
	// Отдельные источники для кодов комнат и костей: генерация кода
	// не должна сдвигать последовательность бросков при фиксированном сиде.
	codeRng := rand.New(rand.NewSource(cfg.Seed))

	s := &GameService{
		cfg:            cfg,
		Store:          session.NewStore(codeRng),
		Hub:            network.NewBroadcaster(),
		dice:           NewRoller(cfg.Seed + 1),
		CommandChan:    make(chan domain.InternalCommand, 100),
		DisconnectChan: make(chan string, 100),
		handlers:       make(map[domain.ActionType]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionHostGame] = handlers.WithPayload(actions.HandleHostGame)
	s.handlers[domain.ActionJoinGame] = handlers.WithPayload(actions.HandleJoinGame)
	s.handlers[domain.ActionMoveToken] = handlers.WithPayload(actions.HandleMoveToken)
	s.handlers[domain.ActionUpdateMap] = handlers.WithPayload(actions.HandleUpdateMap)
	s.handlers[domain.ActionAssignToken] = handlers.WithPayload(actions.HandleAssignToken)
	s.handlers[domain.ActionAddToken] = handlers.WithPayload(actions.HandleAddToken)
	s.handlers[domain.ActionRemoveToken] = handlers.WithPayload(actions.HandleRemoveToken)
	s.handlers[domain.ActionUpdateHP] = handlers.WithPayload(actions.HandleUpdateHP)
	s.handlers[domain.ActionRollDice] = handlers.WithPayload(actions.HandleRollDice)
	s.handlers[domain.ActionRollComplete] = handlers.WithEmptyPayload(actions.HandleRollComplete)
	s.handlers[domain.ActionChatMessage] = handlers.WithPayload(actions.HandleChatMessage)
}

func (s *GameService) Start() {
	go s.Run()
}

// Run - цикл сервиса. Единственная горутина, мутирующая комнаты.
func (s *GameService) Run() {
	logger.Log.Info("Game service loop started")

	var sweep <-chan time.Time
	if s.cfg.EmptyRoomTTL > 0 {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		sweep = ticker.C
	}

	for {
		select {
		case cmd := <-s.CommandChan:
			s.dispatch(cmd)
		case connID := <-s.DisconnectChan:
			s.handleDisconnect(connID)
		case now := <-sweep:
			s.evictIdleRooms(now)
		}
	}
}

// RegisterConnection ставит новое подключение на учет.
// Вызывается из WebSocket-хендлера до первой команды.
func (s *GameService) RegisterConnection(connID string) {
	s.Store.AddConnection(&domain.Connection{ID: connID})
	logger.Log.WithField("conn_id", connID).Info("Client connected")
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// ConnID всегда проставляет сервер - полю из клиентского JSON
// здесь взяться неоткуда.
func (s *GameService) ProcessCommand(cmd api.ClientCommand, connID string) {
	actionType := domain.ParseAction(cmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithFields(logrus.Fields{
			"conn_id": connID,
			"action":  cmd.Action,
		}).Warn("Unknown action")
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		ConnID:  connID,
		Payload: cmd.Payload,
	}
}

// Disconnect сообщает циклу об уходе подключения.
// select не дает заблокировать readPump, если канал полон.
func (s *GameService) Disconnect(connID string) {
	select {
	case s.DisconnectChan <- connID:
	default:
	}
}

// dispatch выполняет одну команду до конца.
func (s *GameService) dispatch(cmd domain.InternalCommand) {
	conn := s.Store.Connection(cmd.ConnID)
	if conn == nil {
		// Подключение успело отвалиться, пока команда лежала в канале.
		return
	}

	h, ok := s.handlers[cmd.Action]
	if !ok {
		logger.Log.WithField("action", cmd.Action).Warn("No handler registered")
		return
	}

	// Членство проверяется здесь, а не в хендлерах: мутация без комнаты
	// и повторный host/join из комнаты отбрасываются одинаково молча.
	var room *domain.Room
	if conn.RoomCode != "" {
		room = s.Store.FindRoom(conn.RoomCode)
	}
	if cmd.Action.RequiresRoom() {
		if room == nil {
			logger.Log.WithFields(logrus.Fields{
				"conn_id": conn.ID,
				"action":  cmd.Action,
			}).Debug("Command without room membership dropped")
			return
		}
	} else if room != nil {
		// Вход во вторую комнату не определен протоколом.
		logger.Log.WithFields(logrus.Fields{
			"conn_id": conn.ID,
			"action":  cmd.Action,
		}).Debug("Lobby command from joined connection dropped")
		return
	}

	ctx := handlers.Context{
		Store: s.Store,
		Dice:  s.dice,
		Conn:  conn,
		Room:  room,
	}

	res, err := h(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"conn_id": conn.ID,
			"action":  cmd.Action,
		}).WithError(err).Warn("Command rejected")
		return
	}

	s.deliver(conn, res)
}

// deliver разводит события результата по адресатам. Комната отправителя
// берется заново: host_game/join_game назначают ее внутри хендлера.
func (s *GameService) deliver(conn *domain.Connection, res handlers.Result) {
	var room *domain.Room
	if conn.RoomCode != "" {
		room = s.Store.FindRoom(conn.RoomCode)
	}

	for _, out := range res.Events {
		switch out.Scope {
		case handlers.ToSender:
			s.Hub.SendTo(conn.ID, out.Event)

		case handlers.ToRoom, handlers.ToRoomExceptSender:
			if room == nil {
				continue
			}
			ids := room.MemberIDs()
			if out.Scope == handlers.ToRoomExceptSender {
				filtered := ids[:0]
				for _, id := range ids {
					if id != conn.ID {
						filtered = append(filtered, id)
					}
				}
				ids = filtered
			}
			s.Hub.SendToMany(ids, out.Event)
		}
	}
}

// handleDisconnect убирает подключение из комнаты и с учета.
// Уже примененные им мутации не откатываются.
func (s *GameService) handleDisconnect(connID string) {
	conn := s.Store.Connection(connID)
	if conn == nil {
		return
	}

	room := s.Store.Leave(conn)
	s.Store.RemoveConnection(connID)

	logger.Log.WithFields(logrus.Fields{
		"conn_id":  connID,
		"username": conn.Username,
	}).Info("Client disconnected")

	if room == nil || len(room.Members) == 0 {
		return
	}
	name := conn.Username
	if name == "" {
		name = "Player"
	}
	s.Hub.SendToMany(room.MemberIDs(), api.ServerEvent{
		Event: api.EventChatMessage,
		Payload: api.ChatMessageEvent{
			User: "System",
			Text: fmt.Sprintf("%s left.", name),
		},
	})
}

// evictIdleRooms удаляет комнаты, пустующие дольше EmptyRoomTTL.
func (s *GameService) evictIdleRooms(now time.Time) {
	for _, room := range s.Store.Rooms() {
		if len(room.Members) > 0 || room.EmptySince.IsZero() {
			continue
		}
		if now.Sub(room.EmptySince) < s.cfg.EmptyRoomTTL {
			continue
		}
		s.Store.RemoveRoom(room.Code)
		logger.Log.WithField("code", room.Code).Info("Evicted empty room")
	}
}
