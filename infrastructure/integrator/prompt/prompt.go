// Package prompt monta o texto enviado aos provedores de linguagem a partir do
// papel e dos dados já calculados.
package prompt

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const Task = "TASK: Analyze the data and provide the requested summary."

// DataContext serializa os dados com indentação de dois espaços
func DataContext(data any) (string, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode prompt data")
	}
	return string(raw), nil
}

// UserMessage é a parte do prompt com os dados, usada quando o provedor aceita o papel separado
func UserMessage(data any) (string, error) {
	dataContext, err := DataContext(data)
	if err != nil {
		return "", err
	}
	return "DATA CONTEXT:\n" + dataContext + "\n\n" + Task, nil
}

// Combine junta papel e dados em um único texto, para provedores sem mensagem de sistema
func Combine(role string, data any) (string, error) {
	message, err := UserMessage(data)
	if err != nil {
		return "", err
	}
	return "ROLE: " + role + "\n\n" + message, nil
}
