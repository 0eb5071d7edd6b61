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

package config

import (
	"reflect"
	"time"

	"github.com/caiflower/httpfs/pkg/tools"
)

type Option func(*Options) *Options

type Options struct {
	Name            string        `yaml:"name" default:"httpfs"`
	Addr            string        `yaml:"addr" default:"127.0.0.1:5500"`
	Network         string        `yaml:"network" default:"tcp"`
	ReadTimeout     time.Duration `yaml:"readTimeout" default:"20s"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" default:"35s"`
	MaxRequestBytes int           `yaml:"maxRequestBytes" default:"1048576"` // 单个请求最大字节数，1MB
	RootDir         string        `yaml:"rootDir"`
	LimiterEnabled  bool          `yaml:"limiterEnabled"`
	Qps             int           `yaml:"qps" default:"1000"`
	EnableMetrics   bool          `yaml:"enableMetrics"`
	MetricsAddr     string        `yaml:"metricsAddr" default:"127.0.0.1:9100"`
	FileCacheTTL    time.Duration `yaml:"fileCacheTTL"`
}

func NewOptions(opts ...Option) *Options {
	options := &Options{}
	_ = tools.DoTagFunc(options, nil, []func(reflect.StructField, reflect.Value, interface{}) error{tools.SetDefaultValueIfNil})

	for _, opt := range opts {
		options = opt(options)
	}
	return options
}

func WithName(name string) Option {
	return func(opts *Options) *Options {
		opts.Name = name
		return opts
	}
}

func WithAddr(addr string) Option {
	return func(opts *Options) *Options {
		opts.Addr = addr
		return opts
	}
}

func WithReadTimeout(readTimeout time.Duration) Option {
	return func(opts *Options) *Options {
		opts.ReadTimeout = readTimeout
		return opts
	}
}

func WithWriteTimeout(writeTimeout time.Duration) Option {
	return func(opts *Options) *Options {
		opts.WriteTimeout = writeTimeout
		return opts
	}
}

func WithMaxRequestBytes(maxRequestBytes int) Option {
	return func(opts *Options) *Options {
		opts.MaxRequestBytes = maxRequestBytes
		return opts
	}
}

func WithRootDir(rootDir string) Option {
	return func(opts *Options) *Options {
		opts.RootDir = rootDir
		return opts
	}
}

func WithQps(enable bool, qps int) Option {
	return func(opts *Options) *Options {
		opts.LimiterEnabled = enable
		opts.Qps = qps
		return opts
	}
}

func WithMetrics(enable bool, metricsAddr string) Option {
	return func(opts *Options) *Options {
		opts.EnableMetrics = enable
		if metricsAddr != "" {
			opts.MetricsAddr = metricsAddr
		}
		return opts
	}
}

func WithFileCacheTTL(ttl time.Duration) Option {
	return func(opts *Options) *Options {
		opts.FileCacheTTL = ttl
		return opts
	}
}
