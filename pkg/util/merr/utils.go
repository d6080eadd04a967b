// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merr

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
)

// Code 返回给定错误对应的错误码。
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	switch specificErr := cause.(type) {
	case dumpError:
		return specificErr.code()

	default:
		if errors.Is(specificErr, context.Canceled) {
			return CanceledCode
		} else if errors.Is(specificErr, context.DeadlineExceeded) {
			return TimeoutCode
		} else {
			return errUnexpected.code()
		}
	}
}

func IsRetryableErr(err error) bool {
	if err, ok := err.(dumpError); ok {
		return err.retriable
	}

	return false
}

func IsCanceledOrTimeout(err error) bool {
	return errors.IsAny(err, context.Canceled, context.DeadlineExceeded)
}

// appendMsg 将附加说明拼接到错误上。
// 多条说明按 "->" 连接，保持与既有错误文本风格一致。
func appendMsg(err error, msg []string) error {
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Parameter related

// WrapErrParameterInvalid 包装“参数取值非法”错误，附带期望值与实际值。
func WrapErrParameterInvalid[T any](expected, actual T, msg ...string) error {
	err := errors.Wrapf(ErrParameterInvalid, "expected=%v, actual=%v", expected, actual)
	return appendMsg(err, msg)
}

// WrapErrParameterInvalidMsg 以格式化文本包装“参数取值非法”错误。
func WrapErrParameterInvalidMsg(format string, args ...any) error {
	return errors.Wrapf(ErrParameterInvalid, format, args...)
}

// WrapErrParameterMissing 包装“参数缺失”错误。
func WrapErrParameterMissing(param string, msg ...string) error {
	err := errors.Wrapf(ErrParameterMissing, "param=%s", param)
	return appendMsg(err, msg)
}

// Serialization related

// WrapErrSerializationFailed 包装序列化失败错误，保留底层 JSON 引擎的原始错误。
func WrapErrSerializationFailed(cause error, msg ...string) error {
	err := errors.Wrapf(ErrSerializationFailed, "cause=%v", cause)
	return appendMsg(err, msg)
}

// Configuration related

// WrapErrConfigInvalid 包装“配置取值非法”错误。
func WrapErrConfigInvalid(key string, value any, msg ...string) error {
	err := errors.Wrapf(ErrConfigInvalid, "key=%s, value=%v", key, value)
	return appendMsg(err, msg)
}

// WrapErrConfigNotFound 包装“配置文件不存在”错误。
func WrapErrConfigNotFound(path string, msg ...string) error {
	err := errors.Wrapf(ErrConfigNotFound, "path=%s", path)
	return appendMsg(err, msg)
}

// IO related

// WrapErrIoFailed 包装 IO 失败错误。
func WrapErrIoFailed(target string, cause error, msg ...string) error {
	err := errors.Wrapf(ErrIoFailed, "target=%s, cause=%v", target, cause)
	return appendMsg(err, msg)
}
