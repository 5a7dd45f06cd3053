package notifications

import (
	"crypto/tls"
	"errors"
	"log/slog"
	"net/smtp"
	"os"
	"strconv"
	"time"

	"github.com/knadh/smtppool"
	"gopkg.in/yaml.v2"
)

type SmtpServerList struct {
	Servers []SmtpServer `yaml:"servers"`
	From    string       `yaml:"from"`
	ReplyTo []string     `yaml:"replyTo"`
}

type SmtpServer struct {
	Host               string `yaml:"host"`
	Port               string `yaml:"port"`
	Connections        int    `yaml:"connections"`
	InsecureSkipVerify bool   `yaml:"insecureSkipVerify"`
	AuthData           struct {
		Username string `yaml:"user"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
	SendTimeout int `yaml:"sendTimeout"`
}

func (s *SmtpServer) Address() string {
	return s.Host + ":" + s.Port
}

func (sl *SmtpServerList) ReadFromFile(fname string) (err error) {
	yamlFile, err := os.ReadFile(fname)
	if err != nil {
		slog.Error("could not read smtp config file", slog.String("file", fname), slog.String("error", err.Error()))
		return err
	}
	err = yaml.UnmarshalStrict(yamlFile, &sl)
	return
}

type SmtpClients struct {
	servers        SmtpServerList
	connectionPool []*smtppool.Pool
	counter        int
}

func NewSmtpClients(config SmtpServerList) (*SmtpClients, error) {
	sc := &SmtpClients{
		servers:        config,
		counter:        0,
		connectionPool: initConnectionPool(config),
	}
	if len(sc.connectionPool) < 1 {
		return nil, errors.New("no smtp server connection in the pool")
	}
	return sc, nil
}

func initConnectionPool(serverList SmtpServerList) []*smtppool.Pool {
	connectionPools := []*smtppool.Pool{}
	for _, server := range serverList.Servers {
		pool, err := connectToPool(server)
		if err != nil {
			slog.Error("error setting up connection pool", slog.String("error", err.Error()), slog.String("server", server.Address()))
			continue
		}
		connectionPools = append(connectionPools, pool)
	}
	return connectionPools
}

func connectToPool(server SmtpServer) (*smtppool.Pool, error) {
	auth := smtp.PlainAuth(
		"",
		server.AuthData.Username,
		server.AuthData.Password,
		server.Host,
	)
	if server.AuthData.Username == "" && server.AuthData.Password == "" {
		auth = nil
	}

	tlsOpts := &tls.Config{
		InsecureSkipVerify: server.InsecureSkipVerify,
		ServerName:         server.Host,
	}
	port, err := strconv.Atoi(server.Port)
	if err != nil {
		return nil, err
	}

	return smtppool.New(smtppool.Opt{
		Host:            server.Host,
		Port:            port,
		MaxConns:        server.Connections,
		IdleTimeout:     time.Duration(server.SendTimeout) * time.Second,
		PoolWaitTimeout: time.Duration(server.SendTimeout) * time.Second,
		TLSConfig:       tlsOpts,
		Auth:            auth,
	})
}

func (sc *SmtpClients) SendMail(to []string, subject string, htmlContent string) error {
	sc.counter += 1
	if len(sc.connectionPool) < 1 {
		sc.connectionPool = initConnectionPool(sc.servers)
		if len(sc.connectionPool) < 1 {
			return errors.New("no servers defined")
		}
	}

	index := sc.counter % len(sc.connectionPool)
	selectedServer := sc.connectionPool[index]

	e := smtppool.Email{
		To:      to,
		From:    sc.servers.From,
		ReplyTo: sc.servers.ReplyTo,
		Subject: subject,
		HTML:    []byte(htmlContent),
	}
	err := selectedServer.Send(e)
	if err != nil {
		// close and try to reconnect
		slog.Error("error when trying to send email", slog.String("error", err.Error()))

		pool, errReconnect := connectToPool(sc.servers.Servers[index])
		if errReconnect != nil {
			slog.Error("cannot reconnect pool", slog.String("error", errReconnect.Error()), slog.String("server", sc.servers.Servers[index].Host))
		} else {
			sc.connectionPool[index] = pool
		}
	}
	return err
}
