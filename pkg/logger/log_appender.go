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

package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/caiflower/httpfs/pkg/e"
	"github.com/caiflower/httpfs/pkg/tools"
)

type Appender interface {
	write(data data)
	close()
}

type logAppender struct {
	timeFormat  string
	isConsole   bool
	enableTrace bool
	enableColor bool
	dir         string
	fileName    string

	bufPool sync.Pool
	log     *log.Logger
	logFile *os.File
}

func newLogAppender(timeFormat, path, fileName string, enableTrace, enableColor bool) Appender {
	appender := &logAppender{
		timeFormat: timeFormat,
		bufPool: sync.Pool{
			New: func() interface{} {
				return new(strings.Builder)
			}},
		dir:         path,
		fileName:    fileName,
		enableTrace: enableTrace,
		enableColor: enableColor,
		log:         new(log.Logger),
	}

	if appender.dir == "" {
		appender.isConsole = true
		appender.log.SetOutput(os.Stdout)
	} else {
		// 创建目录
		if err := tools.Mkdir(appender.dir, 0755); err != nil {
			panic(fmt.Sprintf("[logger appender] mkdir err: %s\n", err))
		}

		filePath := appender.dir + "/" + appender.fileName
		logfile, err := os.OpenFile(filePath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0666)
		if err != nil {
			panic(fmt.Errorf("[logger appender] open logfile err: %s\n", err))
		}
		appender.logFile = logfile
		appender.log.SetOutput(appender.logFile)
	}

	return appender
}

func (appender *logAppender) write(data data) {
	defer e.OnError("[logger appender]")

	timeFormat := data.timestamp.Format(appender.timeFormat)
	if appender.enableColor {
		data.level = getLevelColor(data.level)
	}
	buf := appender.bufPool.Get().(*strings.Builder)
	buf.Reset()
	buf.WriteString(timeFormat)
	buf.WriteString(" [")
	buf.WriteString(data.level)
	buf.WriteString("] ")
	if appender.enableTrace && data.traceID != "" {
		if appender.enableColor {
			data.traceID = fmt.Sprintf("\033[1;35m%s\033[0m", data.traceID)
		}
		buf.WriteString("[")
		buf.WriteString(data.traceID)
		buf.WriteString("] ")
	}
	buf.WriteString(data.position)
	buf.WriteString(" - ")
	buf.WriteString(data.content)

	appender.log.Println(buf.String())
	appender.bufPool.Put(buf)
}

func (appender *logAppender) close() {
	if appender.logFile != nil {
		if err := appender.logFile.Close(); err != nil {
			fmt.Printf("[logger appender] close logfile err: %s\n", err)
		}
		appender.logFile = nil
	}
}
