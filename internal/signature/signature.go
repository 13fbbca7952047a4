// Package signature 负责把提交上来的签名数据还原成可嵌入文档的图片：
// 解析 data URI、确定图片格式、按声明的格式校验解码、裁掉四周空白。
package signature

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/domain"
)

const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// DecodeError 表示签名字节无法按声明的格式解码。
// 签名是表格的法律要件，这个错误必须让整次提交失败，不允许静默出空白文档。
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("signature image does not decode as %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// normalizeFormat 把格式标签归一成 png/jpeg，认不出来返回空串
func normalizeFormat(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG
	case "jpeg", "jpg":
		return FormatJPEG
	default:
		return ""
	}
}

// formatFromMediaType 从 data URI 的媒体类型部分（如 "image/png;base64"）推断格式
func formatFromMediaType(meta string) string {
	mediaType, _, _ := strings.Cut(meta, ";")
	sub, found := strings.CutPrefix(mediaType, "image/")
	if !found {
		return ""
	}
	return normalizeFormat(sub)
}

// Parse 从签名数据中恢复原始字节和图片格式。
// 显式的 Format 标签优先；没有标签时从 data URI 前缀推断；
// 还推断不出来就按 PNG 处理（兼容只发裸 base64 的旧客户端）。
func Parse(sig domain.Signature) ([]byte, string, error) {
	format := normalizeFormat(sig.Format)

	payload := sig.Data
	if rest, found := strings.CutPrefix(sig.Data, "data:"); found {
		meta, data, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, "", errors.New("signature data URI is missing its comma separator")
		}
		payload = data
		if format == "" {
			format = formatFromMediaType(meta)
		}
	}
	if format == "" {
		format = FormatPNG
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("signature data is not valid base64: %w", err)
	}
	return raw, format, nil
}

// Decode 按声明的格式解码签名字节。这里刻意用具体格式的解码器而不是
// 自动嗅探，格式标签和实际内容不一致时必须报错而不是悄悄换一种读法。
func Decode(raw []byte, format string) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch format {
	case FormatPNG:
		img, err = png.Decode(bytes.NewReader(raw))
	case FormatJPEG:
		img, err = jpeg.Decode(bytes.NewReader(raw))
	default:
		err = fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	return img, nil
}

// inkThreshold 之下的透明度当作空白，近白的不透明像素同样当作空白
const inkThreshold = 0x2000

func isBlank(r, g, b, a uint32) bool {
	if a < inkThreshold {
		return true
	}
	return r >= 0xf000 && g >= 0xf000 && b >= 0xf000
}

// Trim 裁掉签名四周的空白（透明或近白的边距），
// 等价于前端画板导出前的裁剪，保证嵌入文档的图片大小只取决于笔迹本身。
// 整张图都是空白时原样返回。
func Trim(img image.Image) image.Image {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isBlank(img.At(x, y).RGBA()) {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return img
	}
	return imaging.Crop(img, image.Rect(minX, minY, maxX+1, maxY+1))
}

// Prepare 完成签名的完整处理：解析、按声明格式校验解码、裁边，
// 再统一重编码成 PNG 返回，渲染层只需要处理一种格式。
func Prepare(sig domain.Signature) ([]byte, error) {
	raw, format, err := Parse(sig)
	if err != nil {
		return nil, err
	}
	img, err := Decode(raw, format)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, Trim(img), imaging.PNG); err != nil {
		return nil, fmt.Errorf("re-encode trimmed signature: %w", err)
	}
	return buf.Bytes(), nil
}
