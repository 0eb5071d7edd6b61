/*
 * Copyright 2024 caiflower Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	golocalv1 "github.com/caiflower/httpfs/pkg/golocal/v1"
	"github.com/caiflower/httpfs/pkg/limiter"
	"github.com/caiflower/httpfs/pkg/logger"
	"github.com/caiflower/httpfs/pkg/safego"
	"github.com/caiflower/httpfs/pkg/tools"
	"github.com/caiflower/httpfs/web/handler"
	"github.com/caiflower/httpfs/web/protocol"
	"github.com/caiflower/httpfs/web/server/config"
)

// 每个连接处理一个请求，不支持keep-alive

type Server struct {
	opts    *config.Options
	logger  logger.ILog
	handler *handler.Handler

	listener      net.Listener
	limiterBucket limiter.Limiter
	metric        *httpMetric
	metricsServer *http.Server

	wg     sync.WaitGroup
	closed int32
}

func New(h *handler.Handler, options *config.Options) *Server {
	s := &Server{
		opts:    options,
		logger:  logger.DefaultLogger(),
		handler: h,
	}

	if options.LimiterEnabled {
		s.limiterBucket = limiter.NewTokenBucket(options.Qps)
	}
	if options.EnableMetrics {
		s.metric = newHttpMetric()
	}
	return s
}

func (s *Server) Name() string {
	return fmt.Sprintf("HTTP_SERVER:%s", s.opts.Name)
}

// Addr 监听地址，Start之后有效
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) Start() error {
	listener, err := net.Listen(s.opts.Network, s.opts.Addr)
	if err != nil {
		return err
	}
	s.listener = listener

	if s.limiterBucket != nil {
		s.limiterBucket.Startup()
	}
	if s.metric != nil {
		s.metricsServer = &http.Server{Addr: s.opts.MetricsAddr, Handler: promhttp.Handler()}
		safego.Go(func() {
			if err := s.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				s.logger.Error("metrics server failed: %s", err.Error())
			}
		})
	}

	s.logger.Info(
		"\n***************************** http server startup ***********************************************\n"+
			"************* web service [name:%s] [rootDir:%s] listening on %s *********\n"+
			"*************************************************************************************************", s.opts.Name, s.opts.RootDir, s.listener.Addr())

	safego.Go(s.acceptLoop)
	return nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if atomic.LoadInt32(&s.closed) == 1 {
				return
			}
			s.logger.Error("accept failed: %s", err.Error())
			continue
		}

		if s.limiterBucket != nil && !s.limiterBucket.TakeTokenNonBlocking() {
			// 超过qps直接断开连接
			_ = conn.Close()
			continue
		}

		s.wg.Add(1)
		c := conn
		safego.Go(func() {
			defer s.wg.Done()
			s.handleConn(c)
		})
	}
}

// handleConn 请求处理过程中的所有错误都在这里转换成HTTP响应或者放弃连接，
// 不会影响accept循环和其他连接
func (s *Server) handleConn(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	start := time.Now()
	golocalv1.PutTraceID(tools.UUID())
	defer golocalv1.Clean()

	if s.opts.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout))
	}

	var req *protocol.Request
	var resp *protocol.Response

	raw, err := readRequest(conn, s.opts.MaxRequestBytes)
	switch {
	case err == ErrRequestTooLarge:
		s.logger.Warn("request from %s exceeds %d bytes", conn.RemoteAddr(), s.opts.MaxRequestBytes)
		resp = protocol.NewResponse(protocol.VersionHTTP11, protocol.StatusPayloadTooLarge, "Invalid Request")
	case err != nil:
		s.logger.Error("read request from %s failed: %s", conn.RemoteAddr(), err.Error())
		return
	default:
		req, err = protocol.ParseRequest(raw)
		if err != nil {
			s.logger.Warn("parse request from %s failed: %s", conn.RemoteAddr(), err.Error())
			resp = protocol.NewResponse(protocol.VersionHTTP11, protocol.StatusBadRequest, "Invalid Request")
		} else {
			s.logger.Debug("received request: %s /%s %s", req.Method, req.Route, req.Version)
			resp = s.handler.Handle(req)
		}
	}

	if s.opts.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(s.opts.WriteTimeout))
	}
	if _, err = conn.Write(resp.Serialize()); err != nil {
		s.logger.Error("write response to %s failed: %s", conn.RemoteAddr(), err.Error())
		return
	}

	if s.metric != nil {
		method := ""
		if req != nil {
			method = string(req.Method)
		}
		s.metric.saveMetric(strconv.Itoa(resp.Status.Code()), method, time.Since(start).Milliseconds())
	}
	s.logger.Info("%s %s", conn.RemoteAddr(), resp.Diagnostic())
}

func (s *Server) Close() {
	if !atomic.CompareAndSwapInt32(&s.closed, 0, 1) {
		return
	}
	s.logger.Info("      **** http server shutdown ****")

	if s.listener != nil {
		_ = s.listener.Close()
	}

	// 等待存量连接处理完成，30秒超时
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.logger.Info(" **** http server gracefully shutdown ****")
	case <-time.After(30 * time.Second):
		s.logger.Warn(" **** http server shutdown timeout ****")
	}

	if s.limiterBucket != nil {
		s.limiterBucket.Close()
	}
	if s.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.metricsServer.Shutdown(ctx)
	}
}
