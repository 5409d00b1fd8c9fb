package memory

import (
	"time"

	"streaming-catalog/internal/data/entity"
)

const (
	posterBaseURL   = "https://image.tmdb.org/t/p/w500"
	backdropBaseURL = "https://image.tmdb.org/t/p/original"
	avatarBaseURL   = "https://i.pravatar.cc/150?u="
	sampleVideoURL  = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"
)

func strptr(s string) *string { return &s }

func seedPopular() []entity.Content {
	return []entity.Content{
		{
			ID: 1, Title: "Duna: Parte Dois", Rating: 8.6, Year: 2024, Duration: "2h 46min",
			Poster:      posterBaseURL + "/8b8R8l88Qje9dn9OE8PY05Nxl1X.jpg",
			Backdrop:    backdropBaseURL + "/xOMo8BRK7PfcJv9JCnx7s5hj0PX.jpg",
			Description: "Paul Atreides se une a Chani e aos Fremen em uma guerra de vingança contra os conspiradores que destruíram sua família.",
			Genres:      []string{"Ficção Científica", "Ação"},
			Kind:        entity.KindMovie,
			TrailerURL:  strptr("https://www.youtube.com/embed/Way9Dexny3w"),
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 2, Title: "Oppenheimer", Rating: 8.4, Year: 2023, Duration: "3h 0min",
			Poster:      posterBaseURL + "/1OsQJEoSXBjduuCvDOlRhoEUaHu.jpg",
			Backdrop:    backdropBaseURL + "/fm6KqXpk3M2HVveHwCrBSSBaO0V.jpg",
			Description: "A história do físico J. Robert Oppenheimer e do seu papel no desenvolvimento da bomba atômica.",
			Genres:      []string{"Drama"},
			Kind:        entity.KindMovie,
			TrailerURL:  strptr("https://www.youtube.com/embed/uYPbbksJxIg"),
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 3, Title: "Interestelar", Rating: 8.7, Year: 2014, Duration: "2h 49min",
			Poster:      posterBaseURL + "/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
			Backdrop:    backdropBaseURL + "/pbrkL804c8yAv3zBZR4QPEafpAR.jpg",
			Description: "Uma equipe de exploradores viaja através de um buraco de minhoca no espaço na tentativa de garantir a sobrevivência da humanidade.",
			Genres:      []string{"Ficção Científica", "Drama"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 4, Title: "Batman: O Cavaleiro das Trevas", Rating: 9.0, Year: 2008, Duration: "2h 32min",
			Poster:      posterBaseURL + "/4lj1ikfsSmMZNyfdi8R8Tv5tsgb.jpg",
			Backdrop:    backdropBaseURL + "/mtgqrSlT47VsmeMVanLTny7BknB.jpg",
			Description: "Batman enfrenta o Coringa, um criminoso anárquico que mergulha Gotham City no caos.",
			Genres:      []string{"Ação", "Drama"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 5, Title: "O Senhor dos Anéis: O Retorno do Rei", Rating: 9.0, Year: 2003, Duration: "3h 21min",
			Poster:      posterBaseURL + "/lYgzfZDSyOVdKrNjYkJrWbinULo.jpg",
			Backdrop:    backdropBaseURL + "/lXhgCODAbBXL5buk9yEmTpOoOgR.jpg",
			Description: "Gandalf e Aragorn lideram o Mundo dos Homens contra o exército de Sauron enquanto Frodo se aproxima da Montanha da Perdição.",
			Genres:      []string{"Ação", "Drama"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 6, Title: "Clube da Luta", Rating: 8.8, Year: 1999, Duration: "2h 19min",
			Poster:      posterBaseURL + "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
			Backdrop:    backdropBaseURL + "/hZkgoQYus5vegHoetLkCJzb17zJ.jpg",
			Description: "Um homem insone e um vendedor de sabonetes formam um clube de luta clandestino que foge ao controle.",
			Genres:      []string{"Drama"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 7, Title: "A Origem", Rating: 8.8, Year: 2010, Duration: "2h 28min",
			Poster:      posterBaseURL + "/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
			Backdrop:    backdropBaseURL + "/s3TBrRGB1iav7gFOCNx3H31MoES.jpg",
			Description: "Um ladrão que rouba segredos corporativos através da tecnologia de compartilhamento de sonhos recebe a missão inversa: plantar uma ideia.",
			Genres:      []string{"Ficção Científica", "Ação"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 8, Title: "Parasita", Rating: 8.5, Year: 2019, Duration: "2h 12min",
			Poster:      posterBaseURL + "/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
			Backdrop:    backdropBaseURL + "/TU9NIjwzjoKPwQHoHshkFcQUCG.jpg",
			Description: "Toda a família de Ki-taek está desempregada, até que eles se infiltram, um a um, na casa de uma família rica.",
			Genres:      []string{"Drama", "Comédia"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
	}
}

func seedNewReleases() []entity.Content {
	popular := seedPopular()
	return []entity.Content{
		popular[1], // Oppenheimer também figura entre os lançamentos
		{
			ID: 9, Title: "Pobres Criaturas", Rating: 8.0, Year: 2023, Duration: "2h 21min",
			Poster:      posterBaseURL + "/jV3c2fsBNCJMCKuDHzLJdXbXxJ8.jpg",
			Backdrop:    backdropBaseURL + "/vVpEOvGAsKxjEFdeYTE8klwyMe5.jpg",
			Description: "A jovem Bella Baxter é trazida de volta à vida pelo brilhante e pouco ortodoxo cientista Dr. Godwin Baxter.",
			Genres:      []string{"Comédia", "Ficção Científica"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 10, Title: "Divertida Mente 2", Rating: 7.7, Year: 2024, Duration: "1h 36min",
			Poster:      posterBaseURL + "/9h2KgGXSmWigNTn3kQdEFFngj9i.jpg",
			Backdrop:    backdropBaseURL + "/k0Thm2l8cQjH6aB2Bd2y37iSjA8.jpg",
			Description: "Riley entra na adolescência e a sala de controle das emoções recebe visitantes inesperados.",
			Genres:      []string{"Animação", "Comédia"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 11, Title: "Furiosa: Uma Saga Mad Max", Rating: 7.6, Year: 2024, Duration: "2h 28min",
			Poster:      posterBaseURL + "/kuhdbYvkmdK1xPJqbLE6cwIxtxn.jpg",
			Backdrop:    backdropBaseURL + "/wNAhuOZ3Zf84jCIlComy2mEMAmQ.jpg",
			Description: "Arrancada do Lugar Verde de Muitas Mães, a jovem Furiosa cai nas mãos de uma grande horda de motoqueiros.",
			Genres:      []string{"Ação", "Ficção Científica"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 12, Title: "A Zona de Interesse", Rating: 7.8, Year: 2023, Duration: "1h 45min",
			Poster:      posterBaseURL + "/hUu9zyZmDd8VZegKi1iK1Vk0RYS.jpg",
			Backdrop:    backdropBaseURL + "/rSPw7tgCH9c6NqICZef4kZjFOQ5.jpg",
			Description: "O comandante de Auschwitz, Rudolf Höss, e sua esposa Hedwig constroem uma vida de sonhos ao lado do campo.",
			Genres:      []string{"Drama"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
	}
}

func seedClassics() []entity.Content {
	return []entity.Content{
		{
			ID: 13, Title: "O Poderoso Chefão", Rating: 9.2, Year: 1972, Duration: "2h 55min",
			Poster:      posterBaseURL + "/oJagOzBu9Rdd9BrciseCm3U3MCU.jpg",
			Backdrop:    backdropBaseURL + "/ejdD20cdHNFAYAN2Htn2uP6m2j9.jpg",
			Description: "O patriarca envelhecido de uma dinastia do crime organizado transfere o controle de seu império clandestino para seu filho relutante.",
			Genres:      []string{"Drama"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 14, Title: "Cidadão Kane", Rating: 8.3, Year: 1941, Duration: "1h 59min",
			Poster:      posterBaseURL + "/sav0jxhqiH0bPr2vZFU0Kw3a7xY.jpg",
			Backdrop:    backdropBaseURL + "/u2YHSH3XNSXSjqMfoA6DwagSEmN.jpg",
			Description: "Após a morte do magnata da imprensa Charles Foster Kane, repórteres tentam decifrar sua última palavra: Rosebud.",
			Genres:      []string{"Drama"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 15, Title: "Pulp Fiction", Rating: 8.9, Year: 1994, Duration: "2h 34min",
			Poster:      posterBaseURL + "/dM2w364MScsjFf8pfMbaWUcWrR.jpg",
			Backdrop:    backdropBaseURL + "/suaEOtk1N1sgg2MTM7oZd2cfVp3.jpg",
			Description: "As vidas de dois assassinos, um boxeador, a esposa de um gângster e dois bandidos se entrelaçam em quatro histórias de violência e redenção.",
			Genres:      []string{"Drama", "Ação"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 16, Title: "Casablanca", Rating: 8.5, Year: 1942, Duration: "1h 42min",
			Poster:      posterBaseURL + "/5K7cOHoay2mZusSLezBOY0Qxh8a.jpg",
			Backdrop:    backdropBaseURL + "/rrsG3xYrWifoduZtsIZ4ntoDfBY.jpg",
			Description: "Em Casablanca, durante a Segunda Guerra, o dono de um café precisa escolher entre o amor e a virtude.",
			Genres:      []string{"Drama"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 17, Title: "2001: Uma Odisseia no Espaço", Rating: 8.3, Year: 1968, Duration: "2h 29min",
			Poster:      posterBaseURL + "/vZmfCAzB4UWZyDzrxGZVzeMwDJ6.jpg",
			Backdrop:    backdropBaseURL + "/zeft4yVxOTtWeWzhh8wj1KTSIxd.jpg",
			Description: "A humanidade encontra um monólito misterioso na Lua e parte em uma missão enigmática rumo a Júpiter.",
			Genres:      []string{"Ficção Científica"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
		{
			ID: 18, Title: "Psicose", Rating: 8.5, Year: 1960, Duration: "1h 49min",
			Poster:      posterBaseURL + "/81d8oyEFgj7FlxJqSDXWr8JH8kV.jpg",
			Backdrop:    backdropBaseURL + "/46FRuTpdHn25pvyQhr2S2aY8zVR.jpg",
			Description: "Uma secretária em fuga se hospeda em um motel isolado administrado por um jovem sob o domínio da mãe.",
			Genres:      []string{"Terror", "Drama"},
			Kind:        entity.KindMovie,
			VideoURL:    strptr(sampleVideoURL),
		},
	}
}

func seedSeries() []entity.Content {
	return []entity.Content{
		{
			ID: 19, Title: "Breaking Bad", Rating: 9.5, Year: 2008, Duration: "5 temporadas",
			Poster:      posterBaseURL + "/ggFHVNu6YYI5L9pCfOacjizRGt.jpg",
			Backdrop:    backdropBaseURL + "/tsRy63Mu5cu8etL1X7ZLyf7UP1M.jpg",
			Description: "Um professor de química do ensino médio diagnosticado com câncer se junta a um ex-aluno para fabricar e vender metanfetamina.",
			Genres:      []string{"Drama"},
			Kind:        entity.KindSeries,
			TrailerURL:  strptr("https://www.youtube.com/embed/HhesaQXLuRY"),
			Seasons: []entity.Season{
				{
					Number: 1,
					Episodes: []entity.Episode{
						{Number: 1, Title: "Piloto", Description: "Walter White recebe um diagnóstico que muda tudo.", Thumbnail: posterBaseURL + "/ydlY3iPfeOAvu8gVqrxPoMvzNCn.jpg", Duration: "58min"},
						{Number: 2, Title: "O Gato Está no Saco...", Description: "Walt e Jesse tentam se livrar das provas.", Thumbnail: posterBaseURL + "/tjDNvbokPLtEnpFyFPyXMOd6Zr1.jpg", Duration: "48min"},
						{Number: 3, Title: "...E o Saco Está no Rio", Description: "Walt enfrenta uma decisão impossível no porão.", Thumbnail: posterBaseURL + "/pKKvhTYgJV6rGTyKnFV0aerWqbI.jpg", Duration: "48min"},
					},
				},
				{
					Number: 2,
					Episodes: []entity.Episode{
						{Number: 1, Title: "Setenta e Três", Description: "As consequências do acordo com Tuco se aproximam.", Thumbnail: posterBaseURL + "/30erzlzIOtOK3k3T3BAl1GiVMP1.jpg", Duration: "47min"},
						{Number: 2, Title: "Grilled", Description: "Walt e Jesse ficam à mercê de um homem imprevisível.", Thumbnail: posterBaseURL + "/kZbDeDohLOw6QOXpZSmT1HkcmKR.jpg", Duration: "48min"},
					},
				},
			},
		},
		{
			ID: 20, Title: "Game of Thrones", Rating: 9.2, Year: 2011, Duration: "8 temporadas",
			Poster:      posterBaseURL + "/7WUHnWGx5OO145IRxPDUkQSh4C7.jpg",
			Backdrop:    backdropBaseURL + "/suopoADq0k8YZr4dQXcU6pToj6s.jpg",
			Description: "Nove famílias nobres lutam pelo controle das terras de Westeros, enquanto um inimigo ancestral retorna.",
			Genres:      []string{"Ação", "Drama"},
			Kind:        entity.KindSeries,
			Seasons: []entity.Season{
				{
					Number: 1,
					Episodes: []entity.Episode{
						{Number: 1, Title: "O Inverno Está Chegando", Description: "Eddard Stark é arrancado de sua vida em Winterfell.", Thumbnail: posterBaseURL + "/wrGWeW4WKxnaeA8sxJb2T9O6ryo.jpg", Duration: "62min"},
						{Number: 2, Title: "A Estrada do Rei", Description: "A comitiva real segue para o sul pela estrada do rei.", Thumbnail: posterBaseURL + "/icjOgl5F9DhysOEo6Six2Qfwcu2.jpg", Duration: "56min"},
					},
				},
			},
		},
		{
			ID: 21, Title: "Stranger Things", Rating: 8.7, Year: 2016, Duration: "4 temporadas",
			Poster:      posterBaseURL + "/49WJfeN0moxb9IPfGn8AIqMGskD.jpg",
			Backdrop:    backdropBaseURL + "/56v2KjBlU4XaOv9rVYEQypROD7P.jpg",
			Description: "Quando um garoto desaparece, uma pequena cidade descobre um mistério envolvendo experimentos secretos e forças sobrenaturais.",
			Genres:      []string{"Ficção Científica", "Terror"},
			Kind:        entity.KindSeries,
			TrailerURL:  strptr("https://www.youtube.com/embed/b9EkMc79ZSU"),
			Seasons: []entity.Season{
				{
					Number: 1,
					Episodes: []entity.Episode{
						{Number: 1, Title: "O Desaparecimento de Will Byers", Description: "Will desaparece ao voltar para casa de bicicleta.", Thumbnail: posterBaseURL + "/AdwF2jXvhdODr6gUZ61bHKRkz09.jpg", Duration: "49min"},
						{Number: 2, Title: "A Esquisita da Rua Maple", Description: "Lucas, Mike e Dustin descobrem a garota na floresta.", Thumbnail: posterBaseURL + "/x3w5hVFCfpSDZmzy3SoGyqEXl0o.jpg", Duration: "56min"},
					},
				},
			},
		},
		{
			ID: 22, Title: "Dark", Rating: 8.8, Year: 2017, Duration: "3 temporadas",
			Poster:      posterBaseURL + "/apbrbWs8M9lyOpJYU5WXrpFbk1Z.jpg",
			Backdrop:    backdropBaseURL + "/3lBDg3i6nn5R2NKFCJ6oKyUo2j5.jpg",
			Description: "O desaparecimento de duas crianças expõe os segredos de quatro famílias em uma saga que atravessa três gerações.",
			Genres:      []string{"Ficção Científica", "Drama"},
			Kind:        entity.KindSeries,
			Seasons: []entity.Season{
				{
					Number: 1,
					Episodes: []entity.Episode{
						{Number: 1, Title: "Segredos", Description: "Em 2019, o desaparecimento de um garoto abala Winden.", Thumbnail: posterBaseURL + "/hxfOVirDRPZj8bMZyfnKfl84bXo.jpg", Duration: "51min"},
						{Number: 2, Title: "Mentiras", Description: "Ulrich investiga o passado da cidade.", Thumbnail: posterBaseURL + "/iqBp6HdPwzJTwaZ2PwBbfTEYKHO.jpg", Duration: "44min"},
					},
				},
			},
		},
		{
			ID: 23, Title: "The Office", Rating: 8.9, Year: 2005, Duration: "9 temporadas",
			Poster:      posterBaseURL + "/7DJKHzAi83BmQrWLrYYOqcoKfhR.jpg",
			Backdrop:    backdropBaseURL + "/vNpuAxGTl9HsUbHqam3E9CzqCvX.jpg",
			Description: "Um olhar documental sobre o cotidiano dos funcionários de um escritório de uma empresa de papel na Pensilvânia.",
			Genres:      []string{"Comédia"},
			Kind:        entity.KindSeries,
			Seasons: []entity.Season{
				{
					Number: 1,
					Episodes: []entity.Episode{
						{Number: 1, Title: "Piloto", Description: "Uma equipe de filmagem chega à Dunder Mifflin de Scranton.", Thumbnail: posterBaseURL + "/9ggbbTtXiQLyhUMjmZpM8WW5YFY.jpg", Duration: "23min"},
						{Number: 2, Title: "Dia da Diversidade", Description: "Michael conduz um seminário de diversidade à sua maneira.", Thumbnail: posterBaseURL + "/9zcbqSxdsRMZWHYtyCd1nXPr2xq.jpg", Duration: "22min"},
					},
				},
			},
		},
		{
			ID: 24, Title: "Peaky Blinders", Rating: 8.8, Year: 2013, Duration: "6 temporadas",
			Poster:      posterBaseURL + "/vUUqzWa2LnHIVqkaKVlVGkVcZIW.jpg",
			Backdrop:    backdropBaseURL + "/99vBORZixICa32Pwdwj0lWcr8K.jpg",
			Description: "Uma família de gângsteres de Birmingham no pós-Primeira Guerra comandada pelo ambicioso Thomas Shelby.",
			Genres:      []string{"Drama", "Ação"},
			Kind:        entity.KindSeries,
			Seasons: []entity.Season{
				{
					Number: 1,
					Episodes: []entity.Episode{
						{Number: 1, Title: "Episódio 1", Description: "Thomas Shelby intercepta um carregamento de armas do exército.", Thumbnail: posterBaseURL + "/lJpAmRkpfjkupDmA9PmIZwahp1j.jpg", Duration: "58min"},
						{Number: 2, Title: "Episódio 2", Description: "Thomas provoca uma guerra com uma família cigana rival.", Thumbnail: posterBaseURL + "/fV3Cohj4t2Hj2R3eZLEhtzJgs95.jpg", Duration: "59min"},
					},
				},
			},
		},
	}
}

func seedGenres() []entity.Genre {
	return []entity.Genre{
		{
			Name:        "Ação",
			Thumbnail:   backdropBaseURL + "/sRLC052ieEzkQs9dEtPMfFxYkej.jpg",
			Description: "Adrenalina pura com perseguições, explosões e heróis inesquecíveis. Prepare-se para sequências de tirar o fôlego.",
			HeroImage:   backdropBaseURL + "/mtgqrSlT47VsmeMVanLTny7BknB.jpg",
		},
		{
			Name:        "Comédia",
			Thumbnail:   backdropBaseURL + "/8kOWDBK6XlPUzckuHDo3wwVRFwt.jpg",
			Description: "Gargalhadas garantidas. Os melhores filmes para relaxar, se divertir e ver o lado mais leve da vida.",
			HeroImage:   backdropBaseURL + "/k1QdGxg2QANL4pLaVd1eJHbcrk.jpg",
		},
		{
			Name:        "Ficção Científica",
			Thumbnail:   backdropBaseURL + "/xJHokMbljvjADYdit5fK5VQsXEG.jpg",
			Description: "Explore outros mundos, futuros distópicos e as fronteiras da imaginação com histórias que desafiam a realidade.",
			HeroImage:   backdropBaseURL + "/pbrkL804c8yAv3zBZR4QPEafpAR.jpg",
		},
		{
			// Terror never received a hero shot; the page falls back to the
			// "filmes" hero.
			Name:        "Terror",
			Thumbnail:   backdropBaseURL + "/8kOWDBK6XlPUzckuHDo3wwVRFwt.jpg",
			Description: "Sustos, suspense e criaturas aterrorizantes. Para os corajosos que gostam de sentir um arrepio na espinha.",
		},
		{
			Name:        "Drama",
			Thumbnail:   backdropBaseURL + "/sRLC052ieEzkQs9dEtPMfFxYkej.jpg",
			Description: "Histórias emocionantes e personagens complexos que exploram a profundidade da condição humana.",
			HeroImage:   backdropBaseURL + "/rSPw7tgCH9c6NqICZef4kZjFOQ5.jpg",
		},
		{
			Name:        "Animação",
			Thumbnail:   backdropBaseURL + "/xJHokMbljvjADYdit5fK5VQsXEG.jpg",
			Description: "Da magia dos contos de fadas às aventuras épicas, a animação quebra barreiras e encanta todas as idades.",
			HeroImage:   backdropBaseURL + "/k0Thm2l8cQjH6aB2Bd2y37iSjA8.jpg",
		},
	}
}

func seedCollectionMetadata() map[string]entity.CollectionMetadata {
	return map[string]entity.CollectionMetadata{
		"populares": {
			Title:       "Populares na 7ª Arte",
			Description: "Os títulos que estão em alta. Veja o que a comunidade está assistindo e se surpreenda com as histórias mais aclamadas do momento.",
			HeroImage:   backdropBaseURL + "/H6vke7zGiuLsz4v4RPeReb9rI25.jpg",
		},
		"lancamentos": {
			Title:       "Lançamentos",
			Description: "As últimas novidades do cinema e da TV, direto para a sua tela. Fique por dentro dos filmes e séries que acabaram de chegar.",
			HeroImage:   backdropBaseURL + "/vVpEOvGAsKxjEFdeYTE8klwyMe5.jpg",
		},
		"classicos": {
			Title:       "Clássicos do Cinema",
			Description: "Obras-primas que definiram gerações. Revisite os filmes que marcaram a história e continuam a inspirar cineastas e espectadores.",
			HeroImage:   backdropBaseURL + "/ejdD20cdHNFAYAN2Htn2uP6m2j9.jpg",
		},
		"series": {
			Title:       "Para Maratonar",
			Description: "Prepare a pipoca e comece a maratona. Séries viciantes com tramas envolventes que vão te prender do primeiro ao último episódio.",
			HeroImage:   backdropBaseURL + "/99vBORZixICa32Pwdwj0lWcr8K.jpg",
		},
		"filmes": {
			Title:       "Filmes",
			Description: "Explore nosso vasto catálogo de filmes. De blockbusters a produções independentes, uma aventura cinematográfica para cada gosto.",
			HeroImage:   backdropBaseURL + "/mtgqrSlT47VsmeMVanLTny7BknB.jpg",
		},
		"minha-lista": {
			Title:       "Minha Lista",
			Description: "Seus favoritos, todos em um só lugar. Continue de onde parou ou reveja os títulos que você mais amou.",
			HeroImage:   backdropBaseURL + "/5i6S0v2BAd76iGzAlm2oKMCDB6W.jpg",
		},
	}
}

// seedThread is the starter discussion served for every content id until its
// thread is mutated.
func seedThread(now time.Time) []entity.Comment {
	return []entity.Comment{
		{
			ID:       1,
			Author:   "Cinefilo_77",
			Avatar:   avatarBaseURL + "a042581f4e29026704d",
			Text:     "Que filmaço! A cinematografia é de outro nível. Recomendo demais!",
			PostedAt: now.Add(-2 * time.Hour),
			Likes:    15,
			Replies: []entity.Comment{
				{
					ID:       4,
					Author:   "Maratoneira_BR",
					Avatar:   avatarBaseURL + "a042581f4e29026705d",
					Text:     "Concordo plenamente! A cena da tempestade de areia foi uma das coisas mais lindas que já vi no cinema.",
					PostedAt: now.Add(-1 * time.Hour),
					Likes:    8,
					Replies:  []entity.Comment{},
				},
			},
		},
		{
			ID:       2,
			Author:   "Maratoneira_BR",
			Avatar:   avatarBaseURL + "a042581f4e29026705d",
			Text:     "O final me deixou de queixo caído. Alguém mais ficou chocado com aquele plot twist?",
			PostedAt: now.Add(-24 * time.Hour),
			Likes:    22,
			Replies:  []entity.Comment{},
		},
		{
			ID:       3,
			Author:   "Pipoca_e_Guarana",
			Avatar:   avatarBaseURL + "a042581f4e29026706d",
			Text:     "A trilha sonora é simplesmente perfeita. Já adicionei na minha playlist.",
			PostedAt: now.Add(-72 * time.Hour),
			Likes:    5,
			Replies:  []entity.Comment{},
		},
	}
}

func seedRatingSummary() entity.RatingSummary {
	return entity.RatingSummary{
		Average: 8.2,
		Total:   1478,
		Distribution: []entity.StarShare{
			{Stars: 5, Percentage: 52},
			{Stars: 4, Percentage: 28},
			{Stars: 3, Percentage: 11},
			{Stars: 2, Percentage: 4},
			{Stars: 1, Percentage: 5},
		},
	}
}

type seedUser struct {
	Name     string
	Email    string
	Password string
	MyList   []int
}

func seedUsers() []seedUser {
	return []seedUser{
		{
			Name:     "Espectador Alpha",
			Email:    "espectador@email.com",
			Password: "password123",
			MyList:   []int{1, 5, 19, 21},
		},
		{
			Name:     "Cinéfila Beta",
			Email:    "cinefila@email.com",
			Password: "password123",
			MyList:   []int{15, 13, 24},
		},
	}
}
