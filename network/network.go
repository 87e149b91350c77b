package network

import (
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/database"
	"github.com/ratel-online/liar/render"
	"github.com/ratel-online/liar/service"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// conn serializes writes from the session and the room's delivery loop.
type conn struct {
	sync.Mutex
	*network.Conn
}

func (c *conn) Write(data []byte) error {
	c.Lock()
	defer c.Unlock()
	return c.Conn.Write(protocol.Packet{
		Body: data,
	})
}

func (c *conn) WriteString(data string) error {
	return c.Write([]byte(data))
}

func handle(manager *database.Manager, rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c)
	if err != nil || authInfo.ID == 0 {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	log.Infof("player auth accessed, conn %d, %d:%s\n", c.ID(), authInfo.ID, authInfo.Name)

	wc := &conn{Conn: c}
	session := service.NewSession(manager, wc, authInfo.Name)
	defer session.Close()
	_ = wc.WriteString(render.Welcome(authInfo.Name))
	_ = wc.WriteString(consts.IsStart)
	for {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		reply, err := session.Handle(packet.String())
		if err != nil {
			if e, ok := err.(consts.Error); ok && e.Exit {
				return nil
			}
			reply = render.Error(err)
		}
		if reply != "" {
			_ = wc.WriteString(reply)
		}
	}
}

func loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(consts.AuthTimeout):
		return nil, consts.ErrorsAuthFail
	}
}
