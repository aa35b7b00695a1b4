package caddy

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// TipRequest 는 홀 레이아웃 입력이다.
type TipRequest struct {
	HoleNumber         int     `json:"holeNumber" validate:"gte=1,lte=36"`
	Par                int     `json:"par" validate:"gte=1,lte=10"`
	DistToPin          float64 `json:"distToPin" validate:"gte=0,lte=2000"`
	HazardsDescription string  `json:"hazardsDescription" validate:"max=2000"`
	Wind               string  `json:"wind" validate:"max=200"`
}

// TipResponse 는 팁 성공 응답 본문이다.
type TipResponse struct {
	Tip string `json:"tip"`
}

// SpeechRequest 는 음성 합성 입력이다.
type SpeechRequest struct {
	Text string `json:"text" validate:"required,max=5000"`
}

// SpeechResponse 는 음성 성공 응답 본문이다. AudioData 는 base64 문자열이다.
type SpeechResponse struct {
	AudioData string `json:"audioData"`
}

// InputError 는 요청 본문 디코딩/검증 실패다.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return "invalid request body: " + e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsInputError 는 err 가 InputError 인지 확인한다.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeTipRequest 는 JSON 본문을 TipRequest 로 디코딩하고 검증한다.
func DecodeTipRequest(body []byte) (TipRequest, error) {
	var req TipRequest
	if err := decodeBody(body, &req); err != nil {
		return TipRequest{}, err
	}
	return req, nil
}

// DecodeSpeechRequest 는 JSON 본문을 SpeechRequest 로 디코딩하고 검증한다.
func DecodeSpeechRequest(body []byte) (SpeechRequest, error) {
	var req SpeechRequest
	if err := decodeBody(body, &req); err != nil {
		return SpeechRequest{}, err
	}
	return req, nil
}

// rejectFractionalInt: 소수부가 있는 숫자를 정수 필드에 넣으려 하면 오류를 냅니다.
// 약타입 변환은 7.9 를 7 로 잘라내기 때문입니다.
func rejectFractionalInt(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 || to.Kind() != reflect.Int {
		return data, nil
	}
	value, _ := data.(float64)
	if value != math.Trunc(value) {
		return nil, fmt.Errorf("expected integer, got %v", value)
	}
	return data, nil
}

// decodeBody: 본문을 map 으로 파싱한 뒤 mapstructure 약타입 변환으로 result 를 채우고 검증합니다.
// "7" 같은 숫자 문자열도 허용됩니다.
func decodeBody(body []byte, result any) error {
	if len(strings.TrimSpace(string(body))) == 0 {
		return &InputError{Err: errors.New("empty body")}
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return &InputError{Err: fmt.Errorf("parse json: %w", err)}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       rejectFractionalInt,
	})
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}
	if err := decoder.Decode(payload); err != nil {
		return &InputError{Err: fmt.Errorf("decode: %w", err)}
	}

	if err := validate.Struct(result); err != nil {
		return &InputError{Err: fmt.Errorf("validate: %w", err)}
	}
	return nil
}
