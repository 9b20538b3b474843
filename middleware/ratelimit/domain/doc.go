// Package domain define contratos e tipos de domínio para rate limit e
// concorrência do gateway.
//
// Este pacote não depende de net/http nem de implementações concretas.
// A intenção é permitir testes de unidade puros e desacoplar regras de
// negócio de detalhes de infraestrutura. A forma de fio do Retry-After
// (segundos vs HTTP-date) também não aparece aqui: o domínio só conhece
// durações.
package domain
