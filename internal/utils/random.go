package utils

import (
	"math/rand"
)

// 去掉了容易混淆的 0/O、1/I 等字符
var referenceCharacters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const referenceLength = 6

// GenerateReference 生成回执参考号（形如 TS-7GK2QX），
// 会出现在提交响应和回执邮件里，方便口头或邮件沟通时引用某次提交
func GenerateReference() string {
	b := make([]byte, referenceLength)
	for i := range b {
		b[i] = referenceCharacters[rand.Intn(len(referenceCharacters))]
	}
	return "TS-" + string(b)
}
