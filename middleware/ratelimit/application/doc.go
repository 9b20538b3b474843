// Package application contém os casos de uso (regras de aplicação) para
// rate limit e limite de concorrência do gateway.
//
// Ele depende apenas do pacote domain e não conhece net/http nem a
// codificação do header Retry-After.
// Ex.: Service.Decide(key) retorna uma Decision (allow/deny + espera).
package application
