package main

import (
	"fmt"
	"net/http"
	"time"

	"retryafter-gateway/header/retryafter"
)

func main() {
	http.HandleFunc("/showTela", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<h1>Tela do Sistema</h1><p>Requisição recebida com sucesso!</p>")
		fmt.Println("Log: Alguém acessou o endpoint /showTela")
	})

	// endpoint que sempre nega, para validar na mão o parse do Retry-After
	// nos dois formatos (curl -i e olhar o header)
	http.HandleFunc("/limitado", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("formato") == "data" {
			retryafter.Set(w.Header(), retryafter.NewDate(time.Now().Add(30*time.Second)))
		} else {
			ra, _ := retryafter.NewDelay(30 * time.Second)
			retryafter.Set(w.Header(), ra)
		}
		http.Error(w, "calma aí", http.StatusTooManyRequests)
		fmt.Println("Log: Alguém levou 429 no /limitado")
	})

	fmt.Println("Servidor rodando em http://localhost:8081")
	err := http.ListenAndServe(":8081", nil)
	if err != nil {
		fmt.Printf("Erro ao subir o servidor: %s\n", err)
	}
}
