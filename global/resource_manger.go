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

package global

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/caiflower/httpfs/pkg/logger"
	"github.com/caiflower/httpfs/pkg/syncx"
)

// DefaultResourceManger
// 用于守护进程的优雅退出，如HTTP Server

type Resource interface {
	Close()
}

type DaemonResource interface {
	Resource
	Name() string
	Start() error
}

type resourceManger struct {
	lock    sync.Locker
	daemons []DaemonResource
	running bool
}

var DefaultResourceManger = &resourceManger{lock: syncx.NewSpinLock()}

func (rm *resourceManger) AddDaemon(daemon DaemonResource) {
	rm.lock.Lock()
	defer rm.lock.Unlock()

	for _, v := range rm.daemons {
		if v == daemon {
			return
		}
	}

	rm.daemons = append(rm.daemons, daemon)
}

// Signal 启动所有daemon并阻塞等待退出信号。启动失败是致命错误。
func (rm *resourceManger) Signal() {
	if !rm.running {
		rm.lock.Lock()
		if !rm.running {
			rm.running = true

			for _, daemon := range rm.daemons {
				if err := daemon.Start(); err != nil {
					logger.Fatal("Signal failed. Start '%s' resource failed. Error: %s", daemon.Name(), err.Error())
					rm.lock.Unlock()
					panic(err)
				}
			}

			sign := make(chan os.Signal, 1)
			signal.Notify(sign, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
			rm.lock.Unlock()
			s := <-sign
			logger.Info("Accept signal %s. The application is shutting down...", s)
			rm.destroy()
			rm.running = false
		}
	}
}

func (rm *resourceManger) destroy() {
	for _, daemon := range rm.daemons {
		daemon.Close()
	}
}
